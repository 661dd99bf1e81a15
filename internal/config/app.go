package config

type AppConfig struct {
	Server ServerConfig
	Store  StoreConfig
	Log    LogConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	serverCfg, err := LoadServer()
	if err != nil {
		return AppConfig{}, err
	}
	storeCfg, err := LoadStore()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Server: serverCfg,
		Store:  storeCfg,
		Log:    logCfg,
	}, nil
}
