package warmup

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("metamodel/warmup", "preloading of specifications")
