package defaults

import (
	"testing"

	"gotest.tools/assert"
)

func TestBuiltinDefaults(t *testing.T) {
	policy := NewPolicy()

	vk, err := policy.Default("vk_percent", PowerFactory)
	assert.NilError(t, err)
	assert.Equal(t, vk, 12.0)

	tap, err := policy.Default("tap_set_vm_pu", RSCAD)
	assert.NilError(t, err)
	assert.Equal(t, tap, 1.0)
}

func TestUnknownAttributeIsError(t *testing.T) {
	policy := NewPolicy()

	_, err := policy.Default("no_such_attribute", PowerFactory)
	assert.Assert(t, err != nil)
}

func TestSetOverridesBuiltin(t *testing.T) {
	policy := NewPolicy()
	policy.Set(PowerFactory, "vk_percent", 10.0)

	vk, err := policy.Default("vk_percent", PowerFactory)
	assert.NilError(t, err)
	assert.Equal(t, vk, 10.0)

	// other platforms keep the built-in value
	vk, err = policy.Default("vk_percent", Simscape)
	assert.NilError(t, err)
	assert.Equal(t, vk, 12.0)
}

func TestLoadFile(t *testing.T) {
	policy := NewPolicy()
	err := policy.LoadFile("defaults_test_table.yaml")
	assert.NilError(t, err)

	r0, err := policy.Default("r0_ohm_per_km", RSCAD)
	assert.NilError(t, err)
	assert.Equal(t, r0, 0.25)

	// attributes not in the file fall through to the built-in table
	alpha, err := policy.Default("alpha", RSCAD)
	assert.NilError(t, err)
	assert.Equal(t, alpha, 0.00403)
}
