package config

import "testing"

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InitialTime != 1 {
		t.Fatalf("initial_time = %d, want 1", cfg.InitialTime)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_RejectsMalformedChainIDOverride(t *testing.T) {
	v := New()
	v.Set("chain_id", "not-hex-and-not-64-chars")
	if _, err := Load(v); err == nil {
		t.Fatal("expected malformed chain_id override to be rejected")
	}
}

func TestLoad_ReadsOverrides(t *testing.T) {
	v := New()
	v.Set("home", "/tmp/nzcore-test")
	v.Set("initial_time", 5)
	v.Set("policy", `type != "forbidden"`)

	cfg, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Home != "/tmp/nzcore-test" || cfg.InitialTime != 5 || cfg.PolicyExpr != `type != "forbidden"` {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
