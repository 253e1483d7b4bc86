package recommender

import "strings"

// Lista de stop words en inglés para el corpus de cursos.
// Subconjunto de la lista clásica de sklearn/Glasgow; suficiente para
// descripciones de cursos (el vocabulario igual está acotado por maxFeatures).
var englishStopWords = buildStopWordSet(`
a about above after again against all also am an and any are as at
be because been before being below between both but by
can cannot could
did do does doing down during
each
few for from further
had has have having he her here hers herself him himself his how
i if in into is it its itself
just
me more most my myself
no nor not now
of off on once only or other our ours ourselves out over own
same she should so some such
than that the their theirs them themselves then there these they this
those through to too
under until up upon
very
was we were what when where which while who whom why will with would
you your yours yourself yourselves
`)

func buildStopWordSet(raw string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(raw) {
		set[w] = struct{}{}
	}
	return set
}

func isStopWord(token string) bool {
	_, ok := englishStopWords[token]
	return ok
}
