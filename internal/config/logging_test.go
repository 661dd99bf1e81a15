package config

import "testing"

func TestLoadLogDefaults(t *testing.T) {
	cfg, err := LoadLog()
	if err != nil {
		t.Fatalf("LoadLog() error = %v", err)
	}
	if cfg.Level != "info" || cfg.Output != "stdout" || cfg.MaxMB != 10 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadLogParse(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_OUTPUT", "stderr")
	t.Setenv("LOG_FILE", "/tmp/bidding.log")

	cfg, err := LoadLog()
	if err != nil {
		t.Fatalf("LoadLog() error = %v", err)
	}
	if cfg.Level != "debug" || cfg.Output != "stderr" || cfg.File != "/tmp/bidding.log" {
		t.Fatalf("unexpected log config: %+v", cfg)
	}
}

func TestLoadConsoleLog(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		wantLevel  string
		wantOutput string
	}{
		{name: "quiet by default", wantLevel: "warn", wantOutput: "stderr"},
		{name: "explicit level kept", env: map[string]string{"LOG_LEVEL": "debug"}, wantLevel: "debug", wantOutput: "stderr"},
		{name: "explicit output kept", env: map[string]string{"LOG_OUTPUT": "stdout"}, wantLevel: "warn", wantOutput: "stdout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := LoadConsoleLog()
			if err != nil {
				t.Fatalf("LoadConsoleLog() error = %v", err)
			}
			if cfg.Level != tt.wantLevel || cfg.Output != tt.wantOutput {
				t.Fatalf("level=%q output=%q, want %q %q", cfg.Level, cfg.Output, tt.wantLevel, tt.wantOutput)
			}
		})
	}
}
