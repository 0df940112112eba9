package spec

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("metamodel/spec", "specification assembly")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
