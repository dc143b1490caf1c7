// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWebConfig_Validate(t *testing.T) {
	valid := func() WebConfig {
		return WebConfig{
			Adapter: Adapter{HTTPAddress: "localhost:3000"},
			Server:  Server{HTTPAddress: "localhost:8080", MaxUploadSize: 1},
			Log:     Log{Level: "debug"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *WebConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *WebConfig) {}},
		{name: "empty api url", mutate: func(c *WebConfig) { c.Adapter.HTTPAddress = " " }, wantErr: ErrInvalidAdapterConfigs},
		{name: "api url without host", mutate: func(c *WebConfig) { c.Adapter.HTTPAddress = "http://" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no listen address", mutate: func(c *WebConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "zero upload size", mutate: func(c *WebConfig) { c.Server.MaxUploadSize = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "unknown level", mutate: func(c *WebConfig) { c.Log.Level = "loud" }, wantErr: ErrInvalidLogConfigs},
		{name: "upper case level", mutate: func(c *WebConfig) { c.Log.Level = "INFO" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConsoleConfig_Validate(t *testing.T) {
	cfg := ConsoleConfig{Adapter: Adapter{HTTPAddress: DefaultAPIURL}, Log: Log{Level: DefaultLogLevel}}
	assert.NoError(t, cfg.validate())

	cfg.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}
