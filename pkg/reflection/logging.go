package reflection

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("metamodel/reflection", "class introspection")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
