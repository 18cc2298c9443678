// Package engine holds the pure emission calculators: the static factor
// table, the personal and industrial formulas, the forecast, the suggestion
// templates and the display insights. Nothing here performs I/O.
package engine

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
)

// defaultCountryKey is the key under which the fallback grid factor is
// published alongside the named countries.
const defaultCountryKey = "default"

// CountryFactor is a grid emission factor in kg CO2e per kWh.
type CountryFactor struct {
	Country string
	Factor  float64
}

// CountryFactors maps country names to grid factors. Lookups are exact and
// case-sensitive; absent keys resolve to the fallback.
type CountryFactors struct {
	entries  []CountryFactor
	index    map[string]float64
	fallback float64
}

// NewCountryFactors builds an ordered country mapping. Later duplicates
// override earlier ones in lookups but keep the first position.
func NewCountryFactors(fallback float64, entries ...CountryFactor) CountryFactors {
	c := CountryFactors{
		entries:  make([]CountryFactor, 0, len(entries)),
		index:    make(map[string]float64, len(entries)),
		fallback: fallback,
	}
	for _, e := range entries {
		if _, ok := c.index[e.Country]; !ok {
			c.entries = append(c.entries, e)
		}
		c.index[e.Country] = e.Factor
	}
	for i := range c.entries {
		c.entries[i].Factor = c.index[c.entries[i].Country]
	}
	return c
}

// Lookup returns the factor for country, or the fallback when unknown.
func (c CountryFactors) Lookup(country string) float64 {
	if f, ok := c.index[country]; ok {
		return f
	}
	return c.fallback
}

// Has reports whether country has its own factor.
func (c CountryFactors) Has(country string) bool {
	_, ok := c.index[country]
	return ok
}

func (c CountryFactors) Default() float64 { return c.fallback }

func (c CountryFactors) Len() int { return len(c.entries) }

// Entries returns a copy of the named entries in table order.
func (c CountryFactors) Entries() []CountryFactor {
	out := make([]CountryFactor, len(c.entries))
	copy(out, c.entries)
	return out
}

// MarshalJSON emits the countries in table order followed by "default".
func (c CountryFactors) MarshalJSON() ([]byte, error) {
	pairs := make([]orderedPair, 0, len(c.entries)+1)
	for _, e := range c.entries {
		pairs = append(pairs, orderedPair{key: e.Country, value: e.Factor})
	}
	pairs = append(pairs, orderedPair{key: defaultCountryKey, value: c.fallback})
	return marshalOrderedJSON(pairs)
}

func (c CountryFactors) MarshalYAML() (any, error) {
	pairs := make([]orderedPair, 0, len(c.entries)+1)
	for _, e := range c.entries {
		pairs = append(pairs, orderedPair{key: e.Country, value: e.Factor})
	}
	pairs = append(pairs, orderedPair{key: defaultCountryKey, value: c.fallback})
	return orderedYAML(pairs), nil
}

// DietFactor is a flat yearly diet emission in tonnes CO2e.
type DietFactor struct {
	Diet   domain.DietType
	Factor float64
}

// DietFactors maps diet types to yearly values. Unknown diets resolve to
// the value of the fallback diet.
type DietFactors struct {
	entries  []DietFactor
	fallback domain.DietType
}

func NewDietFactors(fallback domain.DietType, entries ...DietFactor) DietFactors {
	d := DietFactors{entries: make([]DietFactor, len(entries)), fallback: fallback}
	copy(d.entries, entries)
	return d
}

// Lookup returns the factor for diet, or the fallback diet's factor.
func (d DietFactors) Lookup(diet domain.DietType) float64 {
	if f, ok := d.find(diet); ok {
		return f
	}
	f, _ := d.find(d.fallback)
	return f
}

// Entries returns a copy of the entries in table order.
func (d DietFactors) Entries() []DietFactor {
	out := make([]DietFactor, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d DietFactors) find(diet domain.DietType) (float64, bool) {
	for _, e := range d.entries {
		if e.Diet == diet {
			return e.Factor, true
		}
	}
	return 0, false
}

func (d DietFactors) MarshalJSON() ([]byte, error) {
	return marshalOrderedJSON(d.pairs())
}

func (d DietFactors) MarshalYAML() (any, error) {
	return orderedYAML(d.pairs()), nil
}

func (d DietFactors) pairs() []orderedPair {
	pairs := make([]orderedPair, len(d.entries))
	for i, e := range d.entries {
		pairs[i] = orderedPair{key: string(e.Diet), value: e.Factor}
	}
	return pairs
}

// TransportFactors: car and businessTravel in kg CO2e per km, flight in
// tonnes CO2e per flight hour.
type TransportFactors struct {
	Car            float64 `json:"car"            yaml:"car"`
	Flight         float64 `json:"flight"         yaml:"flight"`
	BusinessTravel float64 `json:"businessTravel" yaml:"businessTravel"`
}

// LifestyleFactors: shopping in kg CO2e per currency unit, waste in kg CO2e
// per kg.
type LifestyleFactors struct {
	Shopping float64 `json:"shopping" yaml:"shopping"`
	Waste    float64 `json:"waste"    yaml:"waste"`
}

// IndustrialFactors: naturalGas kg/m3, diesel kg/L, waste t/t, water kg/m3.
type IndustrialFactors struct {
	NaturalGas float64 `json:"naturalGas" yaml:"naturalGas"`
	Diesel     float64 `json:"diesel"     yaml:"diesel"`
	Waste      float64 `json:"waste"      yaml:"waste"`
	Water      float64 `json:"water"      yaml:"water"`
}

// FactorTable is the full set of emission factors. It is a value type;
// its mappings are never mutated after construction.
type FactorTable struct {
	Electricity CountryFactors    `json:"electricity" yaml:"electricity"`
	Transport   TransportFactors  `json:"transport"   yaml:"transport"`
	Diet        DietFactors       `json:"diet"        yaml:"diet"`
	Lifestyle   LifestyleFactors  `json:"lifestyle"   yaml:"lifestyle"`
	Industrial  IndustrialFactors `json:"industrial"  yaml:"industrial"`
}

// GHG Protocol aligned factors.
var standardFactors = FactorTable{
	Electricity: NewCountryFactors(0.500,
		CountryFactor{"United States", 0.386},
		CountryFactor{"United Kingdom", 0.233},
		CountryFactor{"Germany", 0.401},
		CountryFactor{"Canada", 0.130},
		CountryFactor{"Australia", 0.634},
		CountryFactor{"India", 0.820},
		CountryFactor{"China", 0.555},
		CountryFactor{"France", 0.083},
		CountryFactor{"Japan", 0.462},
		CountryFactor{"Brazil", 0.074},
		CountryFactor{"South Korea", 0.424},
		CountryFactor{"Italy", 0.233},
		CountryFactor{"Spain", 0.181},
		CountryFactor{"Netherlands", 0.311},
		CountryFactor{"Poland", 0.718},
		CountryFactor{"South Africa", 0.928},
		CountryFactor{"Mexico", 0.458},
		CountryFactor{"Turkey", 0.393},
		CountryFactor{"Argentina", 0.366},
		CountryFactor{"Norway", 0.013},
		CountryFactor{"Sweden", 0.045},
		CountryFactor{"Switzerland", 0.029},
		CountryFactor{"Finland", 0.131},
		CountryFactor{"Denmark", 0.109},
		CountryFactor{"Belgium", 0.174},
		CountryFactor{"Austria", 0.159},
		CountryFactor{"Portugal", 0.252},
		CountryFactor{"Greece", 0.569},
		CountryFactor{"Ireland", 0.295},
		CountryFactor{"New Zealand", 0.161},
		CountryFactor{"Thailand", 0.501},
		CountryFactor{"Malaysia", 0.708},
		CountryFactor{"Indonesia", 0.709},
		CountryFactor{"Philippines", 0.631},
		CountryFactor{"Vietnam", 0.514},
		CountryFactor{"Singapore", 0.408},
		CountryFactor{"Israel", 0.598},
		CountryFactor{"United Arab Emirates", 0.490},
		CountryFactor{"Saudi Arabia", 0.694},
		CountryFactor{"Egypt", 0.532},
		CountryFactor{"Chile", 0.298},
		CountryFactor{"Colombia", 0.164},
		CountryFactor{"Peru", 0.233},
		CountryFactor{"Russia", 0.322},
		CountryFactor{"Ukraine", 0.358},
		CountryFactor{"Czech Republic", 0.449},
		CountryFactor{"Hungary", 0.256},
		CountryFactor{"Romania", 0.292},
		CountryFactor{"Bulgaria", 0.433},
		CountryFactor{"Croatia", 0.181},
		CountryFactor{"Slovakia", 0.123},
		CountryFactor{"Slovenia", 0.263},
		CountryFactor{"Lithuania", 0.089},
		CountryFactor{"Latvia", 0.109},
		CountryFactor{"Estonia", 0.291},
	),
	Transport: TransportFactors{
		Car:            0.171,
		Flight:         0.255,
		BusinessTravel: 0.200,
	},
	Diet: NewDietFactors(domain.DietMixed,
		DietFactor{domain.DietVegetarian, 1.5},
		DietFactor{domain.DietPescatarian, 1.9},
		DietFactor{domain.DietMixed, 2.5},
		DietFactor{domain.DietMeatHeavy, 3.3},
	),
	Lifestyle: LifestyleFactors{
		Shopping: 0.5,
		Waste:    0.57,
	},
	Industrial: IndustrialFactors{
		NaturalGas: 1.91,
		Diesel:     2.69,
		Waste:      0.5,
		Water:      0.0003,
	},
}

// StandardFactors returns the built-in factor table.
func StandardFactors() FactorTable {
	return standardFactors
}

// ---------------------------------------------------------------------------
// Ordered map encoding
// ---------------------------------------------------------------------------

type orderedPair struct {
	key   string
	value float64
}

func marshalOrderedJSON(pairs []orderedPair) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.key)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", p.key, err)
		}
		v, err := json.Marshal(p.value)
		if err != nil {
			return nil, fmt.Errorf("marshal value for %q: %w", p.key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func orderedYAML(pairs []orderedPair) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, p := range pairs {
		var value yaml.Node
		// Encode never fails for a float64.
		_ = value.Encode(p.value)
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.key},
			&value,
		)
	}
	return node
}
