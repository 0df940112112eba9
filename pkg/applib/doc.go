// Package applib contains the types used by authors of domain types
// to interact with the metamodel: the user memento passed to session
// scoped support methods and the annotations attached to members.
//
// Domain types provide annotations by implementing Annotated:
//
//	func (Customer) MemberAnnotations() map[string]applib.Annotations {
//		return map[string]applib.Annotations{
//			"":          {applib.Named: "Client"},
//			"PlaceOrder": {applib.DescribedAs: "places a new order"},
//		}
//	}
//
// The empty key addresses the type itself.
package applib
