package logger

import "go.uber.org/fx"

// Module provides the service-wide slog.Logger.
var Module = fx.Provide(New)
