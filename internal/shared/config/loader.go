package config

import (
	"os"
	"strconv"

	"gopkg.in/ini.v1"

	"proxytester/internal/shared/types"
)

// LoadIni 只加载行为配置文件。Environment variables PROXYTESTER_WORKERS and
// PROXYTESTER_TIMEOUT_MS override the values from the file.
func LoadIni(cfg *types.Config, fileName string) error {
	iniFile, err := ini.Load(fileName)
	if err != nil {
		return err
	}
	if err := iniFile.MapTo(cfg); err != nil {
		return err
	}
	overrideFromEnvInt(&cfg.CampaignConf.Workers, "PROXYTESTER_WORKERS")
	overrideFromEnvInt(&cfg.CampaignConf.TimeoutMs, "PROXYTESTER_TIMEOUT_MS")
	return nil
}

func overrideFromEnvInt(target *int, envName string) {
	envValue := os.Getenv(envName)
	if envValue != "" {
		if intValue, err := strconv.Atoi(envValue); err == nil {
			*target = intValue
		}
	}
}
