package factories

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("metamodel/factories", "facet factories")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
