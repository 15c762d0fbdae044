package config

import (
	"testing"

	"github.com/spf13/viper"
)

func Test_New(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("k", 31)
	viper.Set("workers", 4)
	viper.Set("method", "spearman")
	viper.Set("threshold", 0.75)
	viper.Set("num-nodes", 50)

	c := New()

	if c.K != 31 {
		t.Errorf("K = %d, want 31", c.K)
	}
	if c.Workers != 4 {
		t.Errorf("Workers = %d, want 4", c.Workers)
	}
	if c.Method != "spearman" {
		t.Errorf("Method = %q, want spearman", c.Method)
	}
	if c.Threshold != 0.75 {
		t.Errorf("Threshold = %v, want 0.75", c.Threshold)
	}
	if c.NumNodes != 50 {
		t.Errorf("NumNodes = %d, want 50", c.NumNodes)
	}
}

// Test that a missing settings file leaves defaults intact instead
// of failing
func Test_Load_missingFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.SetDefault("k", 21)
	Load("does_not_exist.yaml")

	if c := New(); c.K != 21 {
		t.Errorf("K = %d, want the untouched default 21", c.K)
	}
}
