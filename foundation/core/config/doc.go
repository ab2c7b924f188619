// Package config loads TOML and YAML configuration documents.
//
// Package: config
// Title: Tiny Configuration Loader
// Description: Values are read by dotted key ("lexer.number_policy"). When an
//              environment prefix is set, PREFIX_SECTION_KEY variables take
//              precedence over file values. The typed application view lives
//              in pkg/core/config.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
package config
