package interaction

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("metamodel/interaction", "evaluation of member facets")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
