package guard_test

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/guard/pkg/guard"
)

type currency int

const (
	currencyUnknown currency = iota
	currencyUSD
	currencyEUR
)

func (currency) Members() []currency {
	return []currency{currencyUnknown, currencyUSD, currencyEUR}
}

type payment struct {
	account  string
	amount   float64
	currency currency
	tags     []string
}

func newPayment(account string, amount float64, cur currency, tags []string) (*payment, error) {
	account, err := guard.NotBlank("account", account)
	if err != nil {
		return nil, err
	}
	amount, err = guard.GreaterThan("amount", amount, 0, "amount must be positive")
	if err != nil {
		return nil, err
	}
	cur, err = guard.ValidEnumAndNotDefault("currency", cur)
	if err != nil {
		return nil, err
	}
	if err := guard.NotEmptySlice("tags", tags); err != nil {
		return nil, err
	}
	return &payment{account: account, amount: amount, currency: cur, tags: tags}, nil
}

// Example demonstrates guard clauses at the top of a constructor
func Example() {
	p, err := newPayment("acc-1", 12.5, currencyUSD, []string{"invoice"})
	fmt.Println(p.amount, err)

	_, err = newPayment("acc-1", 0, currencyUSD, []string{"invoice"})
	fmt.Println(err)

	_, err = newPayment("acc-1", 12.5, currencyUnknown, []string{"invoice"})
	fmt.Println(err)

	_, err = newPayment(" ", 12.5, currencyUSD, nil)
	fmt.Println(errors.Is(err, guard.ErrInvalidArgument))

	// Output:
	// 12.5 <nil>
	// amount must be positive (parameter 'amount')
	// the parameter value cannot be the default enum value (parameter 'currency')
	// true
}

func ExampleMinCount() {
	err := guard.MinCount("replicas", []string{"a"}, 3)
	fmt.Println(err)

	err = guard.MinCount("replicas", []string{"a"}, -1)
	name, _ := guard.ParameterName(err)
	fmt.Println(name, guard.IsOutOfRange(err))

	// Output:
	// a minimum of '3' elements must be present in the collection (parameter 'replicas')
	// minimumCount true
}

func ExampleNotNil() {
	var timeout *int
	_, err := guard.NotNil("timeout", timeout)
	fmt.Println(guard.IsNullArgument(err))

	seconds := 30
	v, err := guard.NotNil("timeout", &seconds)
	fmt.Println(v, err)

	// Output:
	// true
	// 30 <nil>
}
