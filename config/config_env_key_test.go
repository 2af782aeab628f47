package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"push": map[string]any{
			"apiKey": "",
			"appId":  "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"alert": map[string]any{
			"maxScan": 1000,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUSH_APIKEY", want: "push.apiKey"},
		{envKey: "PUSH_APPID", want: "push.appId"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "ALERT_MAXSCAN", want: "alert.maxScan"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyAlertDefaults(t *testing.T) {
	cfg := &Config{}
	applyAlertDefaults(cfg)

	if cfg.Alert.DefaultRadiusMeters != 200 {
		t.Errorf("DefaultRadiusMeters = %v, want 200", cfg.Alert.DefaultRadiusMeters)
	}
	if cfg.Alert.MaxScan != 1000 {
		t.Errorf("MaxScan = %v, want 1000", cfg.Alert.MaxScan)
	}
	if cfg.Alert.HistoryLimit != 20 {
		t.Errorf("HistoryLimit = %v, want 20", cfg.Alert.HistoryLimit)
	}

	cfg = &Config{Alert: &AlertConfig{DefaultRadiusMeters: 500, MaxScan: 50, HistoryLimit: 5}}
	applyAlertDefaults(cfg)

	if cfg.Alert.DefaultRadiusMeters != 500 || cfg.Alert.MaxScan != 50 || cfg.Alert.HistoryLimit != 5 {
		t.Errorf("configured values overwritten: %+v", cfg.Alert)
	}
}
