package applib

import (
	"fmt"
	"strings"
)

// Well-known annotation names.
const (
	Named       = "Named"
	Plural      = "Plural"
	DescribedAs = "DescribedAs"
	Hidden      = "Hidden"
	Disabled    = "Disabled"
	MemberOrder = "MemberOrder"

	// PostsChangedEvent names the event type posted whenever a property is set.
	PostsChangedEvent = "PostsChangedEvent"
	// PostsAddedToEvent names the event type posted whenever an element is added to a collection.
	PostsAddedToEvent = "PostsAddedToEvent"
)

// Annotations describe declarative metadata for a type or a member.
type Annotations map[string]string

func (a Annotations) Get(name string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a[name]
	return v, ok
}

func (a Annotations) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Annotated is implemented by domain types providing annotations for
// themselves (key "") and their members (key: method name).
type Annotated interface {
	MemberAnnotations() map[string]Annotations
}

// When describes the situations a hidden or disabled
// facet applies to.
type When string

const (
	Always         When = "always"
	Never          When = "never"
	OncePersisted  When = "oncePersisted"
	UntilPersisted When = "untilPersisted"
)

var whens = []When{Always, Never, OncePersisted, UntilPersisted}

// ParseWhen parses a When value. The empty string means Always.
func ParseWhen(s string) (When, error) {
	if s == "" {
		return Always, nil
	}
	for _, w := range whens {
		if strings.EqualFold(string(w), s) {
			return w, nil
		}
	}
	return "", fmt.Errorf("invalid when value %q", s)
}
