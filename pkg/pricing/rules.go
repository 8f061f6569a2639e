package pricing

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/whitebox/pkg/validator"
)

// Tier applies Rate to values at or above Min, or strictly above Min when
// Exclusive is set. Tiers are tried in order; the first match wins.
type Tier struct {
	Min       float64 `yaml:"min"`
	Exclusive bool    `yaml:"exclusive,omitempty"`
	Rate      float64 `yaml:"rate"`
}

func (t Tier) matches(v float64) bool {
	if t.Exclusive {
		return v > t.Min
	}
	return v >= t.Min
}

// ShippingTable maps total weight to a flat rate per method. Limits are
// inclusive upper bounds; every method has one rate per limit plus one for
// heavier shipments.
type ShippingTable struct {
	Limits []float64                    `yaml:"limits"`
	Rates  map[ShippingMethod][]float64 `yaml:"rates"`
}

// CategoryBand covers prices in [Min, Max).
type CategoryBand struct {
	Min      float64  `yaml:"min"`
	Max      float64  `yaml:"max"`
	Category Category `yaml:"category"`
}

func (b CategoryBand) contains(price float64) bool {
	return price >= b.Min && price < b.Max
}

// Rules is the complete pricing table set.
type Rules struct {
	Discount   []Tier         `yaml:"discount"`
	Quantity   []Tier         `yaml:"quantity"`
	Shipping   ShippingTable  `yaml:"shipping"`
	Categories []CategoryBand `yaml:"categories"`
	Fallback   Category       `yaml:"fallback"`
}

func DefaultRules() Rules {
	return Rules{
		Discount: []Tier{
			{Min: 500, Exclusive: true, Rate: 0.20},
			{Min: 100, Rate: 0.10},
		},
		Quantity: []Tier{
			{Min: 10, Exclusive: true, Rate: 0.10},
			{Min: 5, Exclusive: true, Rate: 0.05},
		},
		Shipping: ShippingTable{
			Limits: []float64{5, 10},
			Rates: map[ShippingMethod][]float64{
				Standard: {10, 15, 20},
				Express:  {20, 30, 40},
			},
		},
		Categories: []CategoryBand{
			{Min: 10, Max: 50, Category: CategoryA},
			{Min: 50, Max: 100, Category: CategoryB},
			{Min: 100, Max: 200, Category: CategoryC},
		},
		Fallback: CategoryD,
	}
}

// LoadRules decodes a YAML rules document. Sections missing from the
// document keep their DefaultRules values. A document that lists
// shipping.rates replaces the default methods rather than adding to them.
// Unknown keys are rejected.
func LoadRules(r io.Reader) (Rules, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Rules{}, fmt.Errorf("read pricing rules: %w", err)
	}

	rules := DefaultRules()
	if declaresShippingRates(data) {
		rules.Shipping.Rates = nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rules); err != nil {
		if errors.Is(err, io.EOF) {
			return Rules{}, fmt.Errorf("%w: empty document", ErrInvalidRules)
		}
		return Rules{}, errors.Join(ErrInvalidRules, err)
	}

	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// declaresShippingRates reports whether the document sets shipping.rates.
// yaml.v3 merges into an existing map, so the caller clears the defaults
// first. Malformed input reports false and is rejected by the strict decode.
func declaresShippingRates(data []byte) bool {
	var doc struct {
		Shipping struct {
			Rates map[ShippingMethod][]float64 `yaml:"rates"`
		} `yaml:"shipping"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return false
	}
	return doc.Shipping.Rates != nil
}

// WriteYAML encodes the rules in the format LoadRules reads.
func (r Rules) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode pricing rules: %w", err)
	}
	return enc.Close()
}

// Validate checks the table shape. The returned error matches ErrInvalidRules
// and carries validator.ValidationErrors for every offending field.
func (r Rules) Validate() error {
	var rules []validator.Rule

	rules = append(rules, tierRules("discount", r.Discount)...)
	rules = append(rules, tierRules("quantity", r.Quantity)...)

	rules = append(rules,
		validator.AscendingSlice("shipping.limits", r.Shipping.Limits),
		validator.Rule{
			Check: func() bool { return len(r.Shipping.Rates) > 0 },
			Error: validator.ValidationError{
				Field:          "shipping.rates",
				Message:        "field is required",
				TranslationKey: "validation.required",
				TranslationValues: map[string]any{
					"field": "shipping.rates",
				},
			},
		},
	)
	for _, method := range slices.Sorted(maps.Keys(r.Shipping.Rates)) {
		field := fmt.Sprintf("shipping.rates.%s", method)
		rates := r.Shipping.Rates[method]
		rules = append(rules, validator.LenSlice(field, rates, len(r.Shipping.Limits)+1))
		for i, rate := range rates {
			rules = append(rules, validator.NonNegative(fmt.Sprintf("%s[%d]", field, i), rate))
		}
	}

	for i, band := range r.Categories {
		field := fmt.Sprintf("categories[%d]", i)
		rules = append(rules,
			validator.Required(field+".category", string(band.Category)),
			validator.Rule{
				Check: func() bool { return band.Min < band.Max },
				Error: validator.ValidationError{
					Field:          field + ".max",
					Message:        fmt.Sprintf("must be greater than %v", band.Min),
					TranslationKey: "validation.greater_than",
					TranslationValues: map[string]any{
						"field": field + ".max",
						"min":   band.Min,
					},
				},
			},
		)
	}
	rules = append(rules, validator.Required("fallback", string(r.Fallback)))

	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrInvalidRules, err)
	}
	return nil
}

func tierRules(name string, tiers []Tier) []validator.Rule {
	rules := make([]validator.Rule, 0, len(tiers))
	for i, t := range tiers {
		rules = append(rules, validator.Range(fmt.Sprintf("%s[%d].rate", name, i), t.Rate, 0, 1))
	}
	return rules
}

func (r Rules) clone() Rules {
	out := r
	out.Discount = slices.Clone(r.Discount)
	out.Quantity = slices.Clone(r.Quantity)
	out.Categories = slices.Clone(r.Categories)
	out.Shipping.Limits = slices.Clone(r.Shipping.Limits)
	out.Shipping.Rates = make(map[ShippingMethod][]float64, len(r.Shipping.Rates))
	for m, rates := range r.Shipping.Rates {
		out.Shipping.Rates[m] = slices.Clone(rates)
	}
	return out
}
