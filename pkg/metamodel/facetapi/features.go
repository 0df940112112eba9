package facetapi

import (
	"k8s.io/apimachinery/pkg/util/sets"
)

// FeatureType describes the kind of element a facet
// is attached to.
type FeatureType string

const (
	FeatureObject     FeatureType = "object"
	FeatureProperty   FeatureType = "property"
	FeatureCollection FeatureType = "collection"
	FeatureAction     FeatureType = "action"
	FeatureParameter  FeatureType = "parameter"
)

type FeatureTypes = sets.Set[FeatureType]

func NewFeatureTypes(types ...FeatureType) FeatureTypes {
	return sets.New(types...)
}

func ObjectsOnly() FeatureTypes {
	return sets.New(FeatureObject)
}

func ActionsOnly() FeatureTypes {
	return sets.New(FeatureAction)
}

func PropertiesOnly() FeatureTypes {
	return sets.New(FeatureProperty)
}

func CollectionsOnly() FeatureTypes {
	return sets.New(FeatureCollection)
}

func PropertiesAndCollections() FeatureTypes {
	return sets.New(FeatureProperty, FeatureCollection)
}

// Members are actions, properties and collections.
func Members() FeatureTypes {
	return sets.New(FeatureAction, FeatureProperty, FeatureCollection)
}

func Everything() FeatureTypes {
	return sets.New(FeatureObject, FeatureAction, FeatureProperty, FeatureCollection, FeatureParameter)
}

func (t FeatureType) String() string {
	return string(t)
}

func (t FeatureType) IsMember() bool {
	return t == FeatureAction || t == FeatureProperty || t == FeatureCollection
}
