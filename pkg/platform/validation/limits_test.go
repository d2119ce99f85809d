package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "ainadeul/pkg/domain-errors"
)

type LimitsSuite struct {
	suite.Suite
}

func TestLimitsSuite(t *testing.T) {
	suite.Run(t, new(LimitsSuite))
}

func (s *LimitsSuite) TestCheckSliceCount() {
	s.Run("passes at max", func() {
		s.NoError(CheckSliceCount("children", MaxChildrenPerProfile, MaxChildrenPerProfile))
	})

	s.Run("fails above max", func() {
		err := CheckSliceCount("children", MaxChildrenPerProfile+1, MaxChildrenPerProfile)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Contains(err.Error(), "too many children")
	})
}

func (s *LimitsSuite) TestCheckStringLength() {
	s.Run("counts runes not bytes", func() {
		nickname := strings.Repeat("아", MaxNicknameLength)
		s.NoError(CheckStringLength("nickname", nickname, MaxNicknameLength))
	})

	s.Run("fails above max", func() {
		nickname := strings.Repeat("아", MaxNicknameLength+1)
		err := CheckStringLength("nickname", nickname, MaxNicknameLength)
		s.Require().Error(err)
		s.Contains(err.Error(), "nickname exceeds max length")
	})
}
