package types

// CampaignConf 包含一次测试活动的行为配置。
type CampaignConf struct {
	URL       string `ini:"url"`
	Workers   int    `ini:"workers"`
	TimeoutMs int    `ini:"timeout_ms"`
}

// LogConf contains logging specific configuration
type LogConf struct {
	Level string `ini:"level"`
}

// Config 是proxytester的统一配置结构体 (现在只包含行为配置)
type Config struct {
	CampaignConf `ini:"campaign"`
	LogConf      `ini:"log"`
}
