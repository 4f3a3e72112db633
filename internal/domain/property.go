package domain

import (
	"slices"
	"strings"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/validate"
)

// Property is a parameter a model version accepts, e.g. the aspect ratio
// with parameters ["--ar", "--aspect"]. It is identified by its version and
// name.
type Property struct {
	version      ModelVersion
	name         PropertyName
	parameters   []Param
	defaultValue *PropertyValue
	minValue     *PropertyValue
	maxValue     *PropertyValue
	description  *Description
}

// PropertyInput carries raw property fields.
type PropertyInput struct {
	Version      string
	Name         string
	Parameters   []string
	DefaultValue *string
	MinValue     *string
	MaxValue     *string
	Description  *string
}

// NewProperty builds a Property from validated parts. The parameter list
// must not be empty.
func NewProperty(
	version result.Result[ModelVersion],
	name result.Result[PropertyName],
	parameters result.Result[[]Param],
	defaultValue result.Result[*PropertyValue],
	minValue result.Result[*PropertyValue],
	maxValue result.Result[*PropertyValue],
	description result.Result[*Description],
) result.Result[Property] {
	// The three value slots are combined first so the whole fits Combine5.
	values := validate.Combine3(defaultValue, minValue, maxValue)
	combined := validate.Combine5(version, name, validate.NonEmpty(FieldParameters, parameters), values, description)
	return result.Map(combined,
		func(t validate.Tuple5[ModelVersion, PropertyName, []Param,
			validate.Tuple3[*PropertyValue, *PropertyValue, *PropertyValue], *Description]) Property {
			return Property{
				version:      t.V1,
				name:         t.V2,
				parameters:   t.V3,
				defaultValue: t.V4.V1,
				minValue:     t.V4.V2,
				maxValue:     t.V4.V3,
				description:  t.V5,
			}
		})
}

// ParseProperty validates raw input and builds a Property.
func ParseProperty(in PropertyInput) result.Result[Property] {
	return NewProperty(
		NewModelVersion(in.Version),
		NewPropertyName(in.Name),
		validate.Each(FieldParameters, in.Parameters, NewParam),
		validate.Optional(in.DefaultValue, valueOf(FieldDefaultValue)),
		validate.Optional(in.MinValue, valueOf(FieldMinValue)),
		validate.Optional(in.MaxValue, valueOf(FieldMaxValue)),
		validate.Optional(in.Description, NewDescription),
	)
}

func valueOf(field string) func(string) result.Result[PropertyValue] {
	return func(raw string) result.Result[PropertyValue] { return NewPropertyValue(field, raw) }
}

// Version returns the model version the property belongs to.
func (p Property) Version() ModelVersion { return p.version }

// Name returns the property name, unique within its version.
func (p Property) Name() PropertyName { return p.name }

// DefaultValue returns the default value, or nil when unset.
func (p Property) DefaultValue() *PropertyValue { return p.defaultValue }

// MinValue returns the minimum value, or nil when unset.
func (p Property) MinValue() *PropertyValue { return p.minValue }

// MaxValue returns the maximum value, or nil when unset.
func (p Property) MaxValue() *PropertyValue { return p.maxValue }

// Description returns the description, or nil when the property has none.
func (p Property) Description() *Description { return p.description }

// Parameters returns a copy of the property's parameters.
func (p Property) Parameters() []Param {
	return slices.Clone(p.parameters)
}

// PropertyField names a property field that can be patched individually.
type PropertyField string

// Patchable property fields.
const (
	PropertyFieldDefaultValue PropertyField = "default_value"
	PropertyFieldMinValue     PropertyField = "min_value"
	PropertyFieldMaxValue     PropertyField = "max_value"
	PropertyFieldDescription  PropertyField = "description"
	PropertyFieldParameters   PropertyField = "parameters"
)

// propertySetter applies a raw value to one field. A nil raw clears an
// optional field.
type propertySetter func(p Property, raw *string) result.Result[Property]

var propertySetters = map[PropertyField]propertySetter{
	PropertyFieldDefaultValue: func(p Property, raw *string) result.Result[Property] {
		return result.Map(validate.Optional(raw, valueOf(FieldDefaultValue)), func(v *PropertyValue) Property {
			p.defaultValue = v
			return p
		})
	},
	PropertyFieldMinValue: func(p Property, raw *string) result.Result[Property] {
		return result.Map(validate.Optional(raw, valueOf(FieldMinValue)), func(v *PropertyValue) Property {
			p.minValue = v
			return p
		})
	},
	PropertyFieldMaxValue: func(p Property, raw *string) result.Result[Property] {
		return result.Map(validate.Optional(raw, valueOf(FieldMaxValue)), func(v *PropertyValue) Property {
			p.maxValue = v
			return p
		})
	},
	PropertyFieldDescription: func(p Property, raw *string) result.Result[Property] {
		return result.Map(validate.Optional(raw, NewDescription), func(d *Description) Property {
			p.description = d
			return p
		})
	},
	// Parameters are sent as one comma-separated value and cannot be cleared.
	PropertyFieldParameters: func(p Property, raw *string) result.Result[Property] {
		var parts []string
		if raw != nil {
			parts = strings.Split(*raw, ",")
		}
		params := validate.NonEmpty(FieldParameters, validate.Each(FieldParameters, parts, NewParam))
		return result.Map(params, func(ps []Param) Property {
			p.parameters = ps
			return p
		})
	},
}

// PatchableFields lists the fields accepted by Patch, in a stable order.
func PatchableFields() []string {
	fields := make([]string, 0, len(propertySetters))
	for f := range propertySetters {
		fields = append(fields, string(f))
	}
	slices.Sort(fields)
	return fields
}

// Patch returns a copy of p with the named field set to raw.
// Unknown field names are rejected as invalid input.
func (p Property) Patch(field string, raw *string) result.Result[Property] {
	set, ok := propertySetters[PropertyField(field)]
	if !ok {
		return result.Fail[Property](result.Validation(FieldPropertyField, result.CodeInvalidValue,
			"%s must be one of: %s", FieldPropertyField, strings.Join(PatchableFields(), ", ")))
	}
	return set(p, raw)
}
