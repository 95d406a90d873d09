package auksion

import "auksion_bot/pkg/contextx"

//nolint:gochecknoglobals
var logger = contextx.LoggerFromContextOrDefault
