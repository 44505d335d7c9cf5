package wordfreq

import "strings"

// Набор пунктуации, срезаемой с краёв токена
const punctuation = ".,!?;:\"'()[]{}"

// Report — частотный отчёт по нормализованным словам одного прогона
type Report struct {
	// Repeated: слово → число вхождений, только слова с count > 1
	Repeated map[string]int
	// Unique: слова с одним вхождением, в порядке первого появления
	Unique []string
	// TotalWords: число различных нормализованных слов
	TotalWords int
}

// Normalize срезает пунктуацию с краёв токена и приводит к нижнему
// регистру. Идемпотентна: Normalize(Normalize(x)) == Normalize(x).
func Normalize(token string) string {
	return strings.ToLower(strings.Trim(token, punctuation))
}

// Analyze строит частотный отчёт по заголовкам. Чистая функция:
// одинаковый вход — одинаковый отчёт.
func Analyze(headers []string) Report {
	counts := make(map[string]int)
	var firstSeen []string

	for _, header := range headers {
		for _, token := range strings.Fields(header) {
			word := Normalize(token)
			if word == "" {
				continue
			}
			if _, seen := counts[word]; !seen {
				firstSeen = append(firstSeen, word)
			}
			counts[word]++
		}
	}

	report := Report{
		Repeated:   make(map[string]int),
		TotalWords: len(counts),
	}

	for _, word := range firstSeen {
		if counts[word] > 1 {
			report.Repeated[word] = counts[word]
		} else {
			report.Unique = append(report.Unique, word)
		}
	}

	return report
}
