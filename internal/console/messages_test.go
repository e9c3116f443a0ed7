package console_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regiontrip/internal/console"
)

func TestMessages_KoreanDefault(t *testing.T) {
	m, err := console.NewMessages("")
	require.NoError(t, err)

	assert.Equal(t, "ko", m.Language().String())
	assert.Equal(t, "q: 프로그램 종료", m.Text(console.MsgQuitHint))
	assert.Equal(t, "🎲 무작위 추천 지역: 1111000000: 종로구",
		m.Format(console.MsgRecommendation, map[string]any{"Destination": "1111000000: 종로구"}))
}

func TestMessages_English(t *testing.T) {
	m, err := console.NewMessages("en")
	require.NoError(t, err)

	assert.Equal(t, "q: quit", m.Text(console.MsgQuitHint))
	assert.Equal(t, "[서울특별시 districts]",
		m.Format(console.MsgDistrictMenuHeader, map[string]any{"Parent": "서울특별시"}))
}

func TestMessages_UnsupportedLanguageFallsBackToKorean(t *testing.T) {
	m, err := console.NewMessages("fr")
	require.NoError(t, err)

	assert.Equal(t, "~: 이전 단계로 돌아가기", m.Text(console.MsgBackHint))
}

func TestMessages_MalformedLanguage(t *testing.T) {
	_, err := console.NewMessages("not a tag!")
	require.Error(t, err)
}

func TestMessages_UnknownID(t *testing.T) {
	m, err := console.NewMessages("ko")
	require.NoError(t, err)

	assert.Equal(t, "NoSuchMessage", m.Text("NoSuchMessage"))
}
