package record

import (
	"strings"
	"testing"
)

func publishableData() *Data {
	d := NewData()
	d.Status = StatusPublished
	d.AddMeta(NewTitle("Fieldwork photos", "en"))
	d.AddMeta(NewTypeMeta(COARPrefix + "c_c513"))
	d.AddMeta(NewPersonMeta(PropCreator, NewPerson("Marie", "Dupont", "")))
	d.AddMeta(NewMeta(PropCreated, "2026-03-15", ""))
	d.AddMeta(NewMeta(PropLicense, "CC-BY-4.0", ""))
	return d
}

func TestValidatePublishable(t *testing.T) {
	result := Validate(publishableData(), DefaultValidationOptions())
	if !result.IsValid() {
		t.Errorf("complete payload invalid: %v", result.Error())
	}
	if result.HasWarnings() {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestValidateMissingMandatory(t *testing.T) {
	tests := []struct {
		name string
		drop string
	}{
		{"missing title", PropTitle},
		{"missing type", PropType},
		{"missing creator", PropCreator},
		{"missing created", PropCreated},
		{"missing license", PropLicense},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := publishableData()
			d.Metas = MetaFilter{PropertyURI: tt.drop}.Remove(d.Metas)
			result := Validate(d, DefaultValidationOptions())
			if result.IsValid() {
				t.Errorf("payload without %s accepted", PropertyName(tt.drop))
			}
		})
	}
}

func TestValidatePendingIsLenient(t *testing.T) {
	d := NewData()
	d.AddMeta(NewTitle("Just a title", "en"))
	result := Validate(d, DefaultValidationOptions())
	if !result.IsValid() {
		t.Errorf("pending payload rejected: %v", result.Error())
	}

	// strict options hold pending payloads to publication rules
	result = Validate(d, StrictValidationOptions())
	if result.IsValid() {
		t.Error("strict options accepted an incomplete payload")
	}
}

func TestValidateTypeMustBeCOARURI(t *testing.T) {
	d := publishableData()
	d.Metas = MetaFilter{PropertyURI: PropType}.Remove(d.Metas)
	d.AddMeta(Meta{PropertyURI: PropType, Value: "image", TypeURI: TypeURI})

	result := Validate(d, DefaultValidationOptions())
	if result.IsValid() {
		t.Fatal("bare label accepted as type")
	}
	if !strings.Contains(result.Errors[0].Message, "COAR") {
		t.Errorf("got message %q", result.Errors[0].Message)
	}
}

func TestValidateBadDate(t *testing.T) {
	d := publishableData()
	d.Metas = MetaFilter{PropertyURI: PropCreated}.Remove(d.Metas)
	d.AddMeta(NewMeta(PropCreated, "15/03/2026", ""))

	result := Validate(d, DefaultValidationOptions())
	if result.IsValid() {
		t.Error("slash date accepted")
	}
}

func TestValidateUnknownLicenseWarns(t *testing.T) {
	d := publishableData()
	d.Metas = MetaFilter{PropertyURI: PropLicense}.Remove(d.Metas)
	d.AddMeta(NewMeta(PropLicense, "My Custom License", ""))

	result := Validate(d, DefaultValidationOptions())
	if !result.IsValid() {
		t.Errorf("unknown license should warn, not fail: %v", result.Error())
	}
	if !result.HasWarnings() {
		t.Error("no warning for unknown license")
	}
}

func TestValidateCreatorNeedsSurname(t *testing.T) {
	d := publishableData()
	d.AddMeta(NewPersonMeta(PropContributor, &Person{Givenname: "Marie"}))

	result := Validate(d, DefaultValidationOptions())
	if result.IsValid() {
		t.Error("person without surname accepted")
	}
}

func TestValidateBadLangTagWarns(t *testing.T) {
	d := NewData()
	d.AddMeta(NewTitle("Titel", "!!"))

	result := Validate(d, DefaultValidationOptions())
	if !result.IsValid() {
		t.Errorf("bad lang tag should warn, not fail: %v", result.Error())
	}
	if !result.HasWarnings() {
		t.Error("no warning for bad lang tag")
	}
}

func TestValidateInvalidStatus(t *testing.T) {
	d := NewData()
	d.Status = "archived"
	result := Validate(d, DefaultValidationOptions())
	if result.IsValid() {
		t.Error("invalid status accepted")
	}
}

func TestValidateCollection(t *testing.T) {
	c := NewCollection()
	result := ValidateCollection(c, DefaultValidationOptions())
	if result.IsValid() {
		t.Error("collection without title accepted")
	}

	c.AddMeta(NewTitle("Fieldwork 2026", "en"))
	result = ValidateCollection(c, DefaultValidationOptions())
	if !result.IsValid() {
		t.Errorf("titled collection rejected: %v", result.Error())
	}
}
