package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/KirkDiggler/sylk/internal/services/card"
	"github.com/KirkDiggler/sylk/internal/services/ladder"
	"github.com/KirkDiggler/sylk/internal/services/roster"
	"github.com/KirkDiggler/sylk/internal/services/roulette"
	"github.com/KirkDiggler/sylk/internal/services/seat"
)

// Rulebook lines shown above the roulette board
const (
	RulebookNoMembers   = "멤버를 추가해주세요!"
	RulebookAllAssigned = "모든 멤버의 팀 배정이 완료되었습니다! 🎉"
	RulebookSpinning    = "릴이 회전 중입니다..."
	RulebookTiebreak    = "최종 후보를 선택 중입니다!"
	RulebookDirectPick  = "남은 멤버(%d명)를 자동으로 배정합니다."
	RulebookReady       = "레버를 당겨 팀 배정을 시작하세요!"
)

// service implements the Service interface
type service struct {
	random random.Source
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var src random.Source
	if config != nil {
		src = config.Random
	}
	if src == nil {
		src = random.New(nil)
	}

	return &service{
		random: src,
	}, nil
}

func (s *service) pick(messages []string) string {
	msg, _ := random.PickOne(s.random, messages)
	return msg
}

// GetRouletteStatusMessage returns the rulebook line for the roulette board
func (s *service) GetRouletteStatusMessage(ctx context.Context, input *GetRouletteStatusMessageInput) (*GetRouletteStatusMessageOutput, error) {
	if input == nil || input.Status == nil {
		return nil, errors.New("input status cannot be nil")
	}

	st := input.Status
	out := &GetRouletteStatusMessageOutput{Tone: ToneNeutral}

	switch {
	case len(st.Members) > 0 && st.Unassigned == 0:
		out.Message = RulebookAllAssigned
		out.Tone = ToneCelebration
	case len(st.Members) == 0:
		out.Message = RulebookNoMembers
		out.Tone = ToneWarning
	case st.Phase == models.RoulettePhaseSpinning:
		out.Message = RulebookSpinning
	case st.Phase == models.RoulettePhaseTiebreak:
		out.Message = RulebookTiebreak
	case st.Kind == models.ResultKindDirectPick || st.DirectPickPending:
		out.Message = fmt.Sprintf(RulebookDirectPick, st.Unassigned)
	default:
		out.Message = RulebookReady
	}

	return out, nil
}

// GetRouletteResultMessage announces the member a draw put on a team
func (s *service) GetRouletteResultMessage(ctx context.Context, input *GetRouletteResultMessageInput) (*GetRouletteResultMessageOutput, error) {
	if input == nil || input.Finalist == nil {
		return nil, errors.New("input finalist cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneCelebration
	}

	name := input.Finalist.Name
	team := input.Finalist.Team

	var title string
	var messages []string
	switch input.Kind {
	case models.ResultKindJackpot:
		title = "🎰 JACKPOT!"
		messages = []string{
			fmt.Sprintf("Three of a kind! %s goes straight to team %d.", name, team),
			fmt.Sprintf("The reels agree: %s is on team %d.", name, team),
			fmt.Sprintf("%s, %s, %s. Team %d, no arguments.", name, name, name, team),
		}
	case models.ResultKindSemiJackpot:
		title = "✨ Semi jackpot"
		messages = []string{
			fmt.Sprintf("Two names, one seat. %s takes team %d.", name, team),
			fmt.Sprintf("It was close, but %s lands on team %d.", name, team),
		}
	case models.ResultKindChaos:
		title = "🌀 Chaos"
		messages = []string{
			fmt.Sprintf("Three different names and the wheel chose %s for team %d.", name, team),
			fmt.Sprintf("Out of the chaos, %s joins team %d.", name, team),
		}
	default:
		title = "👉 Direct pick"
		messages = []string{
			fmt.Sprintf("No spin needed. %s joins team %d.", name, team),
		}
	}

	return &GetRouletteResultMessageOutput{
		Title:   title,
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetNameWarningMessage turns an advisory roster warning into a notice
func (s *service) GetNameWarningMessage(ctx context.Context, input *GetNameWarningMessageInput) (*GetNameWarningMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch input.Warning {
	case roster.WarningLeadingDigit:
		return &GetNameWarningMessageOutput{Message: "이름은 숫자로 시작할 수 없습니다."}, nil
	case roster.WarningTooManyDigit:
		return &GetNameWarningMessageOutput{Message: "숫자가 너무 많습니다."}, nil
	default:
		return &GetNameWarningMessageOutput{Message: input.Warning}, nil
	}
}

// GetErrorMessage returns a user-friendly notice for an error
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input error cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneWarning
	}

	title := "앗!"
	var messages []string

	err := input.Err
	switch {
	case errors.Is(err, roster.ErrRosterFull):
		messages = []string{fmt.Sprintf("최대 %d명까지만 추가할 수 있습니다.", models.MaxMembers)}
	case errors.Is(err, roster.ErrDuplicateName):
		messages = []string{"이미 존재하는 이름입니다."}
	case errors.Is(err, roster.ErrEmptyName):
		messages = []string{"이름을 입력해주세요."}
	case errors.Is(err, roster.ErrMemberNotFound):
		messages = []string{"그런 멤버는 없습니다."}
	case errors.Is(err, ladder.ErrInsufficientMembers):
		messages = []string{"최소 2명 이상이어야 합니다!"}
	case errors.Is(err, ladder.ErrNotStarted):
		messages = []string{"사다리를 먼저 시작해주세요!"}
	case errors.Is(err, seat.ErrInsufficientMembers):
		messages = []string{"멤버를 먼저 입력해주세요!"}
	case errors.Is(err, card.ErrInsufficientMembers):
		messages = []string{"멤버를 먼저 등록해주세요!"}
	case errors.Is(err, card.ErrCardsHidden):
		messages = []string{"아직 확인하지 않은 카드가 있습니다! 모든 카드를 뒤집어 주세요."}
	case errors.Is(err, roulette.ErrInsufficientMembers):
		title = "🎉"
		messages = []string{"모든 멤버의 팀 배정이 완료되었습니다!"}
		tone = ToneNeutral
	case errors.Is(err, roulette.ErrDrawInProgress):
		messages = []string{
			"릴이 아직 돌고 있어요. 잠시만 기다려주세요!",
			"The reels are still spinning, hold that lever!",
		}
		tone = ToneFunny
	case errors.Is(err, roulette.ErrSpinNeedsThree), errors.Is(err, roulette.ErrDirectPickUnavailable):
		messages = []string{"남은 멤버가 곧 자동으로 배정됩니다."}
	default:
		title = "Error"
		messages = []string{
			"Something went wrong. Try again in a moment.",
			"That didn't work. Give it another go.",
		}
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
