package console_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regiontrip/internal/console"
	"regiontrip/internal/domain"
	"regiontrip/internal/regions"
)

func newView(t *testing.T) (*console.View, *bytes.Buffer) {
	t.Helper()
	m, err := console.NewMessages("ko")
	require.NoError(t, err)
	var buf bytes.Buffer
	return console.NewView(&buf, m), &buf
}

func TestView_SubregionsShowAttractions(t *testing.T) {
	v, buf := newView(t)
	c, err := regions.Default()
	require.NoError(t, err)

	v.Subregions("서울특별시", []domain.District{
		{Code: "1111000000", Name: "종로구"},
		{Code: "1168000000", Name: "강남구"},
	}, c)

	out := buf.String()
	assert.Contains(t, out, "🏆 [서울특별시] 하위 지역 목록 🏆")
	assert.Contains(t, out, "📍 1111000000: 종로구\n   🌟 대표 관광지:\n      - 경복궁\n      - 청와대\n")
	assert.Contains(t, out, "📍 1168000000: 강남구\n   ⚠  관광지 정보가 없습니다\n")
	assert.NotContains(t, out, "\x1b[", "plain output for non-terminals")
}

func TestView_RegionInfo(t *testing.T) {
	v, buf := newView(t)

	v.RegionInfo("제주시", []domain.Attraction{
		{Name: "성산일출봉", Description: "성산일출봉 관광지"},
	})
	assert.Contains(t, buf.String(), "🏆 [제주시] 지역 정보 🏆")
	assert.Contains(t, buf.String(), "1. 성산일출봉\n   - 성산일출봉 관광지\n")

	buf.Reset()
	v.RegionInfo("강남구", nil)
	assert.Contains(t, buf.String(), "⚠️ 이 지역의 관광지 정보가 없습니다.")
}

func TestView_DistrictMenuAndRecommendation(t *testing.T) {
	v, buf := newView(t)

	v.DistrictMenu("부산광역시", []domain.District{{Code: "2614000000", Name: "서구"}})
	v.Recommendation("2614000000: 서구")

	out := buf.String()
	assert.Contains(t, out, "[부산광역시 하위 지역 목록]\n~: 이전 단계로 돌아가기\nq: 프로그램 종료\n2614000000: 서구\n")
	assert.True(t, strings.HasSuffix(out, "🎲 무작위 추천 지역: 2614000000: 서구\n"))
}

func TestInput_ReadLine(t *testing.T) {
	in := console.NewInput(strings.NewReader("  11 \n\n~\n"))

	for _, want := range []string{"11", "", "~"} {
		got, err := in.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := in.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}
