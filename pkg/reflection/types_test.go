package reflection_test

import (
	"fmt"

	"github.com/mandelsoft/facets/pkg/applib"
)

type Order struct {
	Product string
}

type Base struct {
	orders []Order
}

func (b *Base) PlaceOrder(product string, qty int) {
	for i := 0; i < qty; i++ {
		b.orders = append(b.orders, Order{product})
	}
}

func (b *Base) ChoicesPlaceOrder() []string {
	return []string{"base"}
}

func (b *Base) ValidatePlaceOrder(product string, qty int) (string, error) {
	if qty < 0 {
		return "", fmt.Errorf("negative quantity")
	}
	if qty == 0 {
		return "nothing to order", nil
	}
	return "", nil
}

func (Base) AlwaysHidePlaceOrder() bool {
	return true
}

func (b *Base) GetOrders() []Order {
	return b.orders
}

func (b *Base) MemberAnnotations() map[string]applib.Annotations {
	return map[string]applib.Annotations{
		"":          {applib.Named: "Base Object"},
		"GetOrders": {applib.DescribedAs: "all orders"},
	}
}

type Derived struct {
	Base
	name string
}

func (d *Derived) ChoicesPlaceOrder() []string {
	return []string{"derived"}
}

func (d *Derived) GetName() string {
	return d.name
}

func (Derived) Title() string {
	panic("no title")
}

type Cyclic struct {
	*Cyclic
}
