package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/whitebox/pkg/pricing"
)

func parseFloat(name, arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: not a number", name, arg)
	}
	return v, nil
}

func parseFloats(name string, args []string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := parseFloat(name, arg)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseInt(name, arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: not an integer", name, arg)
	}
	return v, nil
}

// parseOrderItem reads a QTYxPRICE order line such as "3x9.99".
func parseOrderItem(arg string) (pricing.OrderItem, error) {
	qty, price, ok := strings.Cut(strings.ToLower(arg), "x")
	if !ok {
		return pricing.OrderItem{}, fmt.Errorf("invalid order line %q: want QTYxPRICE", arg)
	}
	q, err := parseInt("quantity", qty)
	if err != nil {
		return pricing.OrderItem{}, err
	}
	p, err := parseFloat("price", price)
	if err != nil {
		return pricing.OrderItem{}, err
	}
	return pricing.OrderItem{Quantity: q, Price: p}, nil
}
