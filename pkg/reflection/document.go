package reflection

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// Document is a YAML class document.
//
//	classes:
//	- name: Customer
//	  methods:
//	  - name: placeOrder
//	    params: [ string, int ]
//	  - name: validatePlaceOrder
//	    params: [ string, int ]
//	    result: string
type Document struct {
	Classes []ClassSpec `json:"classes"`
}

func ParseDocument(data []byte) (*Document, error) {
	var d Document
	err := yaml.UnmarshalStrict(data, &d)
	if err != nil {
		return nil, fmt.Errorf("invalid class document: %w", err)
	}
	return &d, nil
}

func (d *Document) Define(r *Registry) ([]Class, error) {
	return r.Define(d.Classes...)
}

// DocumentFor describes declared classes as document.
func DocumentFor(classes ...Class) (*Document, error) {
	d := &Document{}
	for _, c := range classes {
		if c.GoType() != nil {
			return nil, fmt.Errorf("class %q is no declared class", c.Name())
		}
		s := ClassSpec{
			Name:        c.Name(),
			Annotations: c.Annotations(),
		}
		if c.Super() != nil {
			s.Super = c.Super().Name()
		}
		for _, m := range c.DeclaredMethods() {
			if dm, ok := m.(*declaredMethod); ok {
				s.Methods = append(s.Methods, dm.spec)
			}
		}
		d.Classes = append(d.Classes, s)
	}
	return d, nil
}

func (d *Document) Data() ([]byte, error) {
	return yaml.Marshal(d)
}
