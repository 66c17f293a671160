package registration_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/signup/pkg/registration"
	"github.com/dmitrymomot/signup/pkg/validator"
)

func ExampleValidateAll() {
	_, err := registration.ValidateAll(registration.Request{
		FirstName: "John", LastName: "Doe", Age: 13, Sex: "G", Country: "Thailand",
	})
	for _, msg := range validator.ExtractValidationErrors(err).Messages() {
		fmt.Println(msg)
	}
	// Output:
	// Invalid age of 13
	// Invalid sex of G
}

func ExampleValidateFailFast() {
	req := registration.Request{FirstName: "John", LastName: "Doe", Age: 18, Sex: "M", Country: "Thailand"}
	out, err := registration.ValidateFailFast(req)
	fmt.Println(err == nil, out == req)
	// Output: true true
}

func ExampleResolve() {
	user, ok := registration.Resolve(registration.Request{
		FirstName: "Teerapat", LastName: "Xeus", Age: 37, Sex: "M", Country: "Thailand",
	})
	fmt.Println(ok, user.Age().Int(), user.Gender(), user.Region())

	_, ok = registration.Resolve(registration.Request{
		FirstName: "Jane", LastName: "Doe", Age: 37, Sex: "M", Country: "Canada",
	})
	fmt.Println(ok)
	// Output:
	// true 37 Male Other
	// false
}

func ExampleMatchRegion() {
	greeting := registration.MatchRegion(registration.Europe{},
		func() string { return "Hallo" },
		func() string { return "Hello" },
		func() string { return "Hi" },
	)
	fmt.Println(greeting)
	// Output: Hallo
}

func ExampleRegistrar_Register() {
	r := registration.NewRegistrar(registration.WithStrategy(registration.StrategyFailFast))

	_, err := r.Register(context.Background(), registration.Request{
		FirstName: "Jane", LastName: "Doe", Age: 37, Sex: "M", Country: "Canada",
	})
	fmt.Println(errors.Is(err, registration.ErrUnresolvable))
	// Output: true
}
