package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

func init() {
	Log = logrus.New()

	// 设置日志格式为 JSON
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
	Log.SetOutput(os.Stderr)
	Log.SetLevel(logrus.InfoLevel)
}

// LogOptions 日志初始化参数
type LogOptions struct {
	Dir     string // 日志目录，为空时不写文件
	Level   string
	Console bool // 是否同时输出到控制台
}

// InitLogger 按配置重新设置全局日志。
// 终端界面运行时 Console 必须为 false，否则日志会打乱界面。
func InitLogger(opts LogOptions) error {
	var out io.Writer = io.Discard
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return fmt.Errorf("无法创建日志目录: %w", err)
		}
		logFile := filepath.Join(opts.Dir, "app.log")
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("无法打开日志文件: %w", err)
		}
		out = file
	}
	Log.SetOutput(out)

	hooks := make(logrus.LevelHooks)
	if opts.Console {
		hooks.Add(&ConsoleHook{})
	}
	SetLogLevel(opts.Level)
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		hooks.Add(&CallerHook{})
	}
	Log.ReplaceHooks(hooks)
	return nil
}

// ConsoleHook 用于同时输出到控制台
type ConsoleHook struct{}

func (hook *ConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (hook *ConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	_, err = os.Stderr.Write([]byte(line))
	return err
}

// SetLogLevel 设置日志级别
func SetLogLevel(level string) {
	switch level {
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "info":
		Log.SetLevel(logrus.InfoLevel)
	case "warn":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	default:
		Log.SetLevel(logrus.InfoLevel)
	}
}

// 添加调用者信息的钩子
type CallerHook struct{}

func (hook *CallerHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (hook *CallerHook) Fire(entry *logrus.Entry) error {
	if pc, file, line, ok := runtime.Caller(6); ok {
		entry.Data["file"] = filepath.Base(file)
		entry.Data["line"] = line
		entry.Data["func"] = runtime.FuncForPC(pc).Name()
	}
	return nil
}
