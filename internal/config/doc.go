// Package config provides the configuration system for crtext.
//
// # Sources
//
// Configuration is merged from several sources, higher sources overriding
// lower ones key by key:
//
//	┌─────────────────────────────┐
//	│  4. Environment Variables   │  ← CRTEXT_*, highest priority
//	├─────────────────────────────┤
//	│  3. Explicit Files          │  ← -c/--config, in order
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/crtext/config.{yaml,toml}
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Files may be YAML or TOML and may pull in other files with an "@include"
// key. The merged map is decoded into Settings with mapstructure and then
// validated.
//
// # Environment
//
// Variables are named CRTEXT_SECTION_SETTING, for example
// CRTEXT_ENGINE_SLOT_SIZE for engine.slotSize. A few short aliases exist,
// such as CRTEXT_LOG_LEVEL and CRTEXT_WATCH.
//
// # Basic Usage
//
//	cfg := config.New(config.WithFile("crtext.yaml"))
//	if err := cfg.Load(ctx); err != nil {
//	    return err
//	}
//	settings := cfg.Settings()
//	e := engine.New(engine.WithSlots(settings.Engine.Slots))
package config
