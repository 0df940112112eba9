package progmodel

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("metamodel/progmodel", "programming model")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
