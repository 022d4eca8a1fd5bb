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
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Session.CookieName != defaultSessionCookieName {
		t.Fatalf("cookie name = %q, want %q", cfg.Session.CookieName, defaultSessionCookieName)
	}
	if cfg.Session.TTL != defaultSessionTTL {
		t.Fatalf("session ttl = %v, want %v", cfg.Session.TTL, defaultSessionTTL)
	}
	if cfg.Session.Store != SessionStorePostgres {
		t.Fatalf("session store = %q, want %q", cfg.Session.Store, SessionStorePostgres)
	}
	if cfg.Order.AddPrecedence != "incoming" || cfg.Order.UpdatePrecedence != "stored" {
		t.Fatalf("precedence = %q/%q", cfg.Order.AddPrecedence, cfg.Order.UpdatePrecedence)
	}
	if len(cfg.Order.PatchableFields) != 2 {
		t.Fatalf("patchable fields = %v", cfg.Order.PatchableFields)
	}
	if cfg.Storage.BucketURL != defaultBucketURL {
		t.Fatalf("bucket url = %q", cfg.Storage.BucketURL)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Session: &SessionConfig{CookieName: "shop_sid", Store: SessionStoreRedis},
		Order:   &OrderConfig{AddPrecedence: "stored", PatchableFields: []string{"status"}},
	}
	applyDefaults(cfg)

	if cfg.Session.CookieName != "shop_sid" || cfg.Session.Store != SessionStoreRedis {
		t.Fatalf("session config overwritten: %+v", cfg.Session)
	}
	if cfg.Order.AddPrecedence != "stored" || cfg.Order.UpdatePrecedence != "stored" {
		t.Fatalf("order config = %+v", cfg.Order)
	}
	if len(cfg.Order.PatchableFields) != 1 {
		t.Fatalf("patchable fields overwritten: %v", cfg.Order.PatchableFields)
	}
}
