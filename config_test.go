package equicore

import (
	"os"
	"testing"
)

func clearEngineConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LEXICON_PATH", "LEAVES_PATH", "PORT", "ACCESS_KEY"} {
		old, had := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if had {
				os.Setenv(key, old)
			}
		})
	}
}

func TestLoadEngineConfigRequiresLexiconPath(t *testing.T) {
	clearEngineConfigEnv(t)
	if _, err := LoadEngineConfig(); err == nil {
		t.Errorf("expected an error when LEXICON_PATH is unset")
	}
}

func TestLoadEngineConfigDefaultsPort(t *testing.T) {
	clearEngineConfigEnv(t)
	os.Setenv("LEXICON_PATH", "/tmp/dict.dawg")
	cfg, err := LoadEngineConfig()
	if err != nil {
		t.Fatalf("LoadEngineConfig: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want default \"8080\"", cfg.Port)
	}
	if cfg.LexiconPath != "/tmp/dict.dawg" {
		t.Errorf("LexiconPath = %q, want /tmp/dict.dawg", cfg.LexiconPath)
	}
	if cfg.LeavesPath != "" {
		t.Errorf("LeavesPath = %q, want empty when unset", cfg.LeavesPath)
	}
}

func TestLoadEngineConfigReadsAllFields(t *testing.T) {
	clearEngineConfigEnv(t)
	os.Setenv("LEXICON_PATH", "/tmp/dict.dawg")
	os.Setenv("LEAVES_PATH", "/tmp/dict.leaves")
	os.Setenv("PORT", "9090")
	os.Setenv("ACCESS_KEY", "secret")
	cfg, err := LoadEngineConfig()
	if err != nil {
		t.Fatalf("LoadEngineConfig: %v", err)
	}
	if cfg.LeavesPath != "/tmp/dict.leaves" || cfg.Port != "9090" || cfg.AccessKey != "secret" {
		t.Errorf("LoadEngineConfig did not pick up all set environment variables: %+v", cfg)
	}
}
