package regions_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regiontrip/internal/domain"
	"regiontrip/internal/regions"
)

var provinceCodes = []domain.RegionCode{
	"11", "26", "27", "28", "29", "30", "31", "36", "41",
	"42", "43", "44", "45", "46", "47", "48", "50",
}

func TestDefault_ProvinceLookupIsTotalAndStable(t *testing.T) {
	c, err := regions.Default()
	require.NoError(t, err)

	provinces := c.Provinces()
	require.Len(t, provinces, len(provinceCodes))

	for i, code := range provinceCodes {
		assert.Equal(t, code, provinces[i].Code, "order at %d", i)

		first, ok := c.Province(code)
		require.True(t, ok, "province %s", code)
		require.NotEmpty(t, first.Name)

		second, ok := c.Province(code)
		require.True(t, ok)
		assert.Equal(t, first, second)
	}

	seoul, _ := c.Province("11")
	assert.Equal(t, "서울특별시", seoul.Name)
	jeju, _ := c.Province("50")
	assert.Equal(t, "제주특별자치도", jeju.Name)
}

func TestDefault_UnknownProvince(t *testing.T) {
	c, err := regions.Default()
	require.NoError(t, err)

	for _, code := range []domain.RegionCode{"", "1", "99", "1111000000"} {
		_, ok := c.Province(code)
		assert.False(t, ok, "code %q", code)
	}
}

func TestDefault_Attractions(t *testing.T) {
	c, err := regions.Default()
	require.NoError(t, err)

	got := c.Attractions("1111000000")
	assert.Equal(t, []domain.Attraction{
		{Name: "경복궁", Description: "경복궁 관광지"},
		{Name: "청와대", Description: "청와대 관광지"},
	}, got)

	assert.Empty(t, c.Attractions("1168000000"))
	assert.Empty(t, c.Attractions("11"))
}

func TestAttractions_ReturnsCopy(t *testing.T) {
	c, err := regions.Default()
	require.NoError(t, err)

	got := c.Attractions("5013000000")
	require.NotEmpty(t, got)
	got[0].Name = "changed"

	assert.Equal(t, "한라산", c.Attractions("5013000000")[0].Name)
}

func TestProvinceName(t *testing.T) {
	c, err := regions.Default()
	require.NoError(t, err)

	name, ok := c.ProvinceName("2644000000")
	require.True(t, ok)
	assert.Equal(t, "부산광역시", name)

	_, ok = c.ProvinceName("9")
	assert.False(t, ok)
}

func TestLoad_MappingSpotsKeepDescription(t *testing.T) {
	const doc = `
provinces:
  - { code: "11", name: 서울특별시 }
attractions:
  "1111000000":
    - name: 경복궁
      description: 조선의 법궁
    - 청와대
`
	c, err := regions.Load(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []domain.Attraction{
		{Name: "경복궁", Description: "조선의 법궁"},
		{Name: "청와대", Description: "청와대 관광지"},
	}, c.Attractions("1111000000"))
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]string{
		"no provinces":  `attractions: {}`,
		"long code":     `provinces: [{ code: "111", name: x }]`,
		"missing name":  `provinces: [{ code: "11" }]`,
		"duplicate":     `provinces: [{ code: "11", name: a }, { code: "11", name: b }]`,
		"unknown field": `provinces: [{ code: "11", name: a, extra: 1 }]`,
		"empty spot":    "provinces: [{ code: \"11\", name: a }]\nattractions: { \"1111000000\": [\"\"] }",
		"not a mapping": `- 1`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := regions.Load(strings.NewReader(doc))
			require.Error(t, err)
		})
	}
}
