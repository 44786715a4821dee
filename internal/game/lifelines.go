package game

import (
	"fmt"
	"math/rand"
	"time"

	"wellness-quiz-service/internal/domain"
)

// LifelineRefreshInterval is how long a user waits before lifelines are topped up again.
const LifelineRefreshInterval = 24 * time.Hour

// FiftyFifty picks two distinct wrong options to eliminate. The correct option
// is never returned.
func FiftyFifty(q domain.Question, rnd *rand.Rand) []int {
	wrong := make([]int, 0, len(q.Options))
	for i := range q.Options {
		if i != q.CorrectOptionIndex {
			wrong = append(wrong, i)
		}
	}
	rnd.Shuffle(len(wrong), func(i, j int) { wrong[i], wrong[j] = wrong[j], wrong[i] })
	if len(wrong) > 2 {
		wrong = wrong[:2]
	}
	return wrong
}

var expertTemplates = []string{
	"Based on my experience, I'd say the correct answer is %q. The patterns in this scenario clearly indicate this as the safest practice.",
	"From a digital safety perspective, you should choose %q. This aligns with best practices for protecting your information.",
	"I'd recommend going with %q. This approach provides the strongest protection against the specific risks described in the question.",
	"The safest option here is definitely %q. Other choices might seem reasonable but contain subtle flaws.",
}

// ExpertTip returns a hint naming the correct option.
func ExpertTip(q domain.Question, rnd *rand.Rand) string {
	correct := ""
	if q.CorrectOptionIndex >= 0 && q.CorrectOptionIndex < len(q.Options) {
		correct = q.Options[q.CorrectOptionIndex]
	}
	return fmt.Sprintf(expertTemplates[rnd.Intn(len(expertTemplates))], correct)
}

// NeedsRefresh reports whether lifelines last refreshed at last are due a top-up at now.
func NeedsRefresh(last, now time.Time) bool {
	return !now.Before(last.Add(LifelineRefreshInterval))
}
