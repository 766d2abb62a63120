package constants

import (
	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance used by DTO validation across modules.
var Validate = validator.New()

type ContextKey string

const (
	AppKey    ContextKey = "app"
	PoolKey   ContextKey = "pool"
	TxKey     ContextKey = "tx"
	ParamsKey ContextKey = "params"
	LoggerKey ContextKey = "logger"
	ActorKey  ContextKey = "actor"
)
