package facetapi

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("metamodel/facets", "facet resolution")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
