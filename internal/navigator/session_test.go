package navigator_test

import (
	"bytes"
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regiontrip/internal/console"
	"regiontrip/internal/navigator"
	"regiontrip/internal/regions"
)

func runSession(t *testing.T, input string) (navigator.Result, string) {
	t.Helper()
	c, err := regions.Default()
	require.NoError(t, err)
	msgs, err := console.NewMessages("ko")
	require.NoError(t, err)

	nav, _ := newNavigator(t, 0)
	var out bytes.Buffer
	s := navigator.NewSession(
		nav,
		c,
		console.NewView(&out, msgs),
		console.NewInput(strings.NewReader(input)),
		rand.New(rand.NewPCG(1, 1)),
		nil,
	)
	res, err := s.Run(context.Background())
	require.NoError(t, err)
	return res, out.String()
}

func TestSession_SeoulScenario(t *testing.T) {
	res, out := runSession(t, "11\n1111000000\n\n")

	require.False(t, res.Quit)
	require.True(t, res.Recommended)
	assert.Equal(t, seoulDistricts, res.Candidates)
	assert.Contains(t, seoulDistricts, res.Recommendation)

	assert.Contains(t, out, "[시/도 목록]\n11: 서울특별시\n26: 부산광역시\n")
	assert.Contains(t, out, "🏆 [서울특별시] 하위 지역 목록 🏆")
	assert.Contains(t, out, "📍 1111000000: 종로구\n   🌟 대표 관광지:\n      - 경복궁\n      - 청와대\n")
	assert.Contains(t, out, "🏆 [종로구] 지역 정보 🏆")
	assert.Contains(t, out, " [서울특별시] 지역 목록 \n"+strings.Repeat("=", 50)+
		"\n1111000000: 종로구\n1114000000: 중구\n1117000000: 용산구\n")
	assert.Contains(t, out, "🎲 무작위 추천 지역: "+res.Recommendation.Code.String()+": "+res.Recommendation.Name+"\n")
}

func TestSession_QuitAtRootPrintsNothingMore(t *testing.T) {
	res, out := runSession(t, "q\n")

	assert.True(t, res.Quit)
	assert.False(t, res.Recommended)
	assert.True(t, strings.HasSuffix(out, "(2자리 시/도 코드, 종료: q): "))
	assert.NotContains(t, out, "무작위 추천")
}

func TestSession_QuitAtDistrictLevel(t *testing.T) {
	res, out := runSession(t, "11\n1114000000\nQ\n")

	assert.True(t, res.Quit)
	assert.Empty(t, res.Candidates)
	assert.True(t, strings.HasSuffix(out, "(전체 코드 입력 또는 Enter로 선택 완료): "))
	assert.NotContains(t, out, "무작위 추천")
}

func TestSession_EndOfInputQuits(t *testing.T) {
	res, out := runSession(t, "11\n")

	assert.True(t, res.Quit)
	assert.NotContains(t, out, "무작위 추천")
}

func TestSession_WarningsReprompt(t *testing.T) {
	res, out := runSession(t, "99\n26\n11\n2617000000\n~\n~\nq\n")

	assert.True(t, res.Quit)
	assert.Contains(t, out, "⚠️ 유효하지 않은 코드입니다. 다시 입력해주세요.")
	assert.Contains(t, out, "⚠️ 해당 지역 정보를 가져오지 못했습니다.")
	assert.Equal(t, 5, strings.Count(out, "[시/도 목록]"), "root menu is shown before every root prompt")
	assert.Equal(t, 2, strings.Count(out, "[서울특별시 하위 지역 목록]"))
}

func TestSession_ContextCanceled(t *testing.T) {
	c, err := regions.Default()
	require.NoError(t, err)
	msgs, err := console.NewMessages("ko")
	require.NoError(t, err)
	nav, _ := newNavigator(t, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	s := navigator.NewSession(nav, c, console.NewView(&out, msgs),
		console.NewInput(strings.NewReader("11\n")), rand.New(rand.NewPCG(1, 1)), nil)
	_, err = s.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
