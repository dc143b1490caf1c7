// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

var knownLogLevels = map[string]struct{}{
	"trace": {},
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// validate checks the invariants shared by every console.
func (cfg *StructuredConfig) validate() error {
	if err := validateAdapter(cfg.Adapter); err != nil {
		return err
	}

	return validateLog(cfg.Log)
}

func (cfg *ConsoleConfig) validate() error {
	if err := validateAdapter(cfg.Adapter); err != nil {
		return err
	}

	return validateLog(cfg.Log)
}

func (cfg *WebConfig) validate() error {
	if err := validateAdapter(cfg.Adapter); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxUploadSize <= 0 {
		return ErrInvalidServerConfigs
	}

	return validateLog(cfg.Log)
}

func validateAdapter(a Adapter) error {
	raw := strings.TrimSpace(a.HTTPAddress)
	if raw == "" {
		return ErrInvalidAdapterConfigs
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func validateLog(l Log) error {
	if _, ok := knownLogLevels[strings.ToLower(l.Level)]; !ok {
		return ErrInvalidLogConfigs
	}

	return nil
}
