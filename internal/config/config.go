package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"pump_base/internal/common"
)

const ENV_PREFIX = "PUMPBASE"

// Config 应用配置
type Config struct {
	Chain       common.Chain
	Seed        int64         // 非零时使用固定随机种子
	LoadDelay   time.Duration `mapstructure:"load_delay"`
	SubmitDelay time.Duration `mapstructure:"submit_delay"`
	Log         LogConfig
}

type LogConfig struct {
	Level string
	Dir   string
}

// SetDefaults 写入默认值
func SetDefaults(v *viper.Viper) {
	v.SetDefault("chain", string(common.CHAIN_BASE))
	v.SetDefault("seed", 0)
	v.SetDefault("load_delay", common.DEFAULT_LOAD_DELAY)
	v.SetDefault("submit_delay", common.DEFAULT_SUBMIT_DELAY)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "logs")
}

// New 创建读取环境变量的 viper 实例。
// 环境变量前缀为 PUMPBASE_，例如 PUMPBASE_LOG_LEVEL。
func New() *viper.Viper {
	// .env 不存在时忽略
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load 读取配置文件（可选）并解析。cfgFile 为空时查找当前目录下的 pumpbase.*
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	if cfgFile == "" {
		cfgFile = os.Getenv(ENV_PREFIX + "_CONFIG")
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("读取配置文件失败: %w", err)
		}
	} else {
		v.SetConfigName("pumpbase")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("读取配置文件失败: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("解析配置失败: %w", err)
	}
	chain, err := common.ParseChain(string(c.Chain))
	if err != nil {
		return Config{}, err
	}
	c.Chain = chain
	if c.LoadDelay < 0 || c.SubmitDelay < 0 {
		return Config{}, fmt.Errorf("延时不能为负数: load_delay=%s submit_delay=%s", c.LoadDelay, c.SubmitDelay)
	}
	return c, nil
}
