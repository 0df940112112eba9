package interaction_test

import (
	"fmt"
	"strings"

	"github.com/mandelsoft/facets/pkg/applib"
)

type Customer struct {
	name      string
	orders    []string
	persisted bool
}

func (c *Customer) MemberAnnotations() map[string]applib.Annotations {
	return map[string]applib.Annotations{
		"GetName":   {applib.PostsChangedEvent: "NameChanged"},
		"GetOrders": {applib.Hidden: "untilPersisted"},
	}
}

func (c *Customer) IsPersisted() bool {
	return c.persisted
}

func (c *Customer) GetName() string {
	return c.name
}

func (c *Customer) SetName(n string) {
	c.name = n
}

func (c *Customer) ValidateName(n string) string {
	if n == "" {
		return "name required"
	}
	return ""
}

func (c *Customer) GetOrders() []string {
	return c.orders
}

func (c *Customer) AddToOrders(o string) {
	c.orders = append(c.orders, o)
}

func (c *Customer) PlaceOrder(product string, qty int) string {
	for i := 0; i < qty; i++ {
		c.AddToOrders(product)
	}
	return fmt.Sprintf("ordered %d %s", qty, product)
}

func (c *Customer) ValidatePlaceOrder(product string, qty int) string {
	if qty <= 0 {
		return "quantity must be positive"
	}
	return ""
}

func (c *Customer) Default0PlaceOrder() string {
	return "coffee"
}

func (c *Customer) Choices0PlaceOrder() []string {
	return []string{"coffee", "tea"}
}

func (c *Customer) AutoComplete0PlaceOrder(search string) []string {
	var r []string
	for _, p := range c.Choices0PlaceOrder() {
		if strings.HasPrefix(p, search) {
			r = append(r, p)
		}
	}
	return r
}

func (c *Customer) HidePlaceOrder(u *applib.User) bool {
	return !u.HasRole("buyer")
}

func (c *Customer) DisablePlaceOrder() string {
	if len(c.orders) >= 3 {
		return "too many orders"
	}
	return ""
}
