package answer

import (
	"fmt"
	"strings"
)

// ArticleStatus describes how the learner handled a leading Spanish article.
type ArticleStatus int

const (
	ArticleNotApplicable ArticleStatus = iota // The expected answer has no article.
	ArticleCorrect
	ArticleMissing
	ArticleWrong
	ArticleExtra // The learner added an article the expected answer lacks.
)

func (s ArticleStatus) String() string {
	switch s {
	case ArticleNotApplicable:
		return "not_applicable"
	case ArticleCorrect:
		return "correct"
	case ArticleMissing:
		return "missing"
	case ArticleWrong:
		return "wrong"
	case ArticleExtra:
		return "extra"
	}
	return fmt.Sprintf("ArticleStatus(%d)", int(s))
}

// Similarity multipliers for an accepted stem with an article problem.
const (
	missingArticlePenalty = 0.9
	wrongArticlePenalty   = 0.8
)

var spanishArticles = map[string]struct{}{
	"el": {}, "la": {}, "los": {}, "las": {},
	"un": {}, "una": {}, "unos": {}, "unas": {},
}

// splitArticle separates a leading article from a normalized answer.
// A lone article with nothing after it is treated as the stem.
func splitArticle(normalized string) (article, stem string) {
	head, rest, ok := strings.Cut(normalized, " ")
	if !ok || rest == "" {
		return "", normalized
	}
	if _, isArticle := spanishArticles[head]; !isArticle {
		return "", normalized
	}
	return head, rest
}

// CheckSpanishAnswer grades a Spanish noun phrase, scoring the article and the
// word separately. A correct word with a missing, wrong or extra article is
// still accepted: a missing article is forgiven in listening mode and
// penalized in recall mode, a wrong or extra article is always penalized.
func CheckSpanishAnswer(userAnswer, correctAnswer string, opts Options) Result {
	user, correct := Normalize(userAnswer), Normalize(correctAnswer)

	correctArticle, correctStem := splitArticle(correct)
	userArticle, userStem := splitArticle(user)

	if correctArticle == "" {
		if userArticle == "" {
			return grade(user, correct, correctAnswer, opts)
		}
		return gradeExtraArticle(userArticle, userStem, correct, correctAnswer, opts)
	}

	stem := grade(userStem, correctStem, correctAnswer, opts)
	if !stem.IsCorrect {
		if userArticle == correctArticle {
			stem.Article = ArticleCorrect
		} else if userArticle == "" {
			stem.Article = ArticleMissing
		} else {
			stem.Article = ArticleWrong
		}
		return stem
	}

	switch {
	case userArticle == correctArticle:
		stem.Article = ArticleCorrect
		return stem

	case userArticle == "":
		stem.Article = ArticleMissing
		if opts.Listening {
			return stem
		}
		stem.Similarity = clamp01(stem.Similarity * missingArticlePenalty)
		stem.Band = BandMinor
		stem.Feedback = fmt.Sprintf("Correct! Remember the article: %s", correctAnswer)
		return stem

	default:
		stem.Article = ArticleWrong
		stem.Similarity = clamp01(stem.Similarity * wrongArticlePenalty)
		stem.Band = BandMinor
		stem.Feedback = fmt.Sprintf("Correct word, but the article is %q, not %q: %s",
			correctArticle, userArticle, correctAnswer)
		return stem
	}
}

// gradeExtraArticle scores the word without the article the learner added.
func gradeExtraArticle(userArticle, userStem, correct, correctAnswer string, opts Options) Result {
	stem := grade(userStem, correct, correctAnswer, opts)
	stem.Article = ArticleExtra
	if !stem.IsCorrect {
		return stem
	}

	stem.Similarity = clamp01(stem.Similarity * wrongArticlePenalty)
	stem.Band = BandMinor
	stem.Feedback = fmt.Sprintf("Correct word, but it takes no article %q: %s", userArticle, correctAnswer)
	return stem
}
