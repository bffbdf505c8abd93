package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"brigada/internal/form"
	"brigada/internal/testutil"
)

func infoSection(t *testing.T) Section {
	t.Helper()
	s, ok := SectionByID(SectionInfo)
	require.True(t, ok)
	return s
}

func TestValidate_ValidValuesPass(t *testing.T) {
	errs := Validate(infoSection(t), testutil.ValidInfoValues())

	assert.Empty(t, errs)
}

func TestValidate_RequiredOnTrimmedValue(t *testing.T) {
	values := testutil.ValidInfoValues()
	values[form.FieldName] = "   "

	errs := Validate(infoSection(t), values)

	assert.Equal(t, MsgRequired, errs[form.FieldName])
}

func TestValidate_AllErrorsReported(t *testing.T) {
	values := map[string]string{}

	errs := Validate(infoSection(t), values)

	// Every required field missing at once; no short-circuit.
	assert.Len(t, errs, 4)
	assert.Equal(t, MsgRequired, errs[form.FieldName])
	assert.Equal(t, MsgRequired, errs[form.FieldActiveMembers])
	assert.Equal(t, MsgRequired, errs[form.FieldCommanderName])
	assert.Equal(t, MsgRequired, errs[form.FieldCommanderPhone])
}

func TestValidate_NameFormat(t *testing.T) {
	values := testutil.ValidInfoValues()
	values[form.FieldCommanderName] = "Maria 123"

	errs := Validate(infoSection(t), values)

	assert.Equal(t, MsgLettersOnly, errs[form.FieldCommanderName])
}

func TestValidate_PhoneExactlyEightDigits(t *testing.T) {
	for _, raw := range []string{"1234567", "123456789", "76a54321", "7654 321"} {
		values := testutil.ValidInfoValues()
		values[form.FieldCommanderPhone] = raw

		errs := Validate(infoSection(t), values)
		assert.Equal(t, MsgPhoneFormat, errs[form.FieldCommanderPhone], "raw=%q", raw)
	}
}

func TestValidate_OptionalFieldsSkippedWhenEmpty(t *testing.T) {
	values := testutil.ValidInfoValues()
	values[form.FieldLogisticsOfficer] = ""
	values[form.FieldLogisticsPhone] = ""
	values[form.FieldEmergencyNumbers] = ""

	errs := Validate(infoSection(t), values)

	assert.Empty(t, errs)
}

func TestValidate_OptionalFieldsStillFormatChecked(t *testing.T) {
	values := testutil.ValidInfoValues()
	values[form.FieldLogisticsPhone] = "123"
	values[form.FieldEmergencyNumbers] = "110; 119"

	errs := Validate(infoSection(t), values)

	assert.Equal(t, MsgPhoneFormat, errs[form.FieldLogisticsPhone])
	assert.Equal(t, MsgEmergencyList, errs[form.FieldEmergencyNumbers])
}

func TestValidate_MemberCountAtLeastOne(t *testing.T) {
	for _, raw := range []string{"0", "-1", "abc"} {
		values := testutil.ValidInfoValues()
		values[form.FieldActiveMembers] = raw

		errs := Validate(infoSection(t), values)
		assert.Equal(t, MsgAtLeastOneMember, errs[form.FieldActiveMembers], "raw=%q", raw)
	}
}

func TestValidate_ItemSectionsHaveNoRequiredFields(t *testing.T) {
	for _, section := range Sections() {
		if section.ID == SectionInfo {
			continue
		}
		errs := Validate(section, map[string]string{})
		assert.Empty(t, errs, section.ID)
	}
}

func TestValidate_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := map[string]string{
			form.FieldName:           rapid.String().Draw(t, "name"),
			form.FieldCommanderPhone: rapid.String().Draw(t, "phone"),
		}

		section, _ := SectionByID(SectionInfo)
		first := Validate(section, values)
		second := Validate(section, values)
		assert.Equal(t, first, second)
	})
}
