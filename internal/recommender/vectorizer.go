package recommender

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// CourseVectorizer es el espacio de features TF-IDF sobre el texto de los
// cursos (nombre + descripción + tags). Se ajusta una sola vez con el
// catálogo completo; después el vocabulario y los pesos IDF quedan
// congelados. Proyecciones posteriores (intereses del alumno) usan el
// mismo vocabulario: los términos fuera de él simplemente se descartan.
type CourseVectorizer struct {
	maxFeatures int
	vocabulary  map[string]int // término -> columna
	idf         []float64      // alineado por columna
	fitted      bool
}

func NewCourseVectorizer(maxFeatures int) *CourseVectorizer {
	if maxFeatures <= 0 {
		maxFeatures = 500
	}
	return &CourseVectorizer{maxFeatures: maxFeatures}
}

// tokenize pasa a minúsculas, corta por caracteres no alfanuméricos y
// descarta tokens de una sola letra y stop words.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 || isStopWord(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// FitTransform ajusta el vocabulario + IDF con el corpus completo y devuelve
// la matriz de cursos (una fila por documento, normalizada L2).
// Es una operación one-shot: para re-ajustar hay que construir un
// vectorizador nuevo con el catálogo completo.
func (v *CourseVectorizer) FitTransform(corpus []string) [][]float64 {
	tokenized := make([][]string, len(corpus))
	termCounts := make(map[string]int) // frecuencia total en el corpus
	docFreq := make(map[string]int)    // en cuántos documentos aparece

	for i, doc := range corpus {
		tokens := tokenize(doc)
		tokenized[i] = tokens

		seen := make(map[string]bool, len(tokens))
		for _, t := range tokens {
			termCounts[t]++
			if !seen[t] {
				docFreq[t]++
				seen[t] = true
			}
		}
	}

	// Si hay más términos que maxFeatures nos quedamos con los más
	// frecuentes del corpus (empates por orden alfabético, para que el
	// resultado sea determinista).
	terms := make([]string, 0, len(termCounts))
	for t := range termCounts {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if termCounts[terms[i]] != termCounts[terms[j]] {
			return termCounts[terms[i]] > termCounts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > v.maxFeatures {
		terms = terms[:v.maxFeatures]
	}
	sort.Strings(terms)

	v.vocabulary = make(map[string]int, len(terms))
	for idx, t := range terms {
		v.vocabulary[t] = idx
	}

	// IDF suavizado: ln((1+N)/(1+df)) + 1
	n := float64(len(corpus))
	v.idf = make([]float64, len(terms))
	for t, idx := range v.vocabulary {
		v.idf[idx] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}
	v.fitted = true

	matrix := make([][]float64, len(corpus))
	for i, tokens := range tokenized {
		matrix[i] = v.vectorize(tokens)
	}
	return matrix
}

// TransformText proyecta texto arbitrario (p.e. los intereses del alumno)
// al espacio ya ajustado. Términos fuera del vocabulario se ignoran.
func (v *CourseVectorizer) TransformText(text string) []float64 {
	return v.vectorize(tokenize(text))
}

// NumFeatures devuelve la dimensión del espacio (tamaño del vocabulario).
func (v *CourseVectorizer) NumFeatures() int {
	return len(v.vocabulary)
}

func (v *CourseVectorizer) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(v.vocabulary))
	if !v.fitted {
		return vec
	}

	for _, t := range tokens {
		if idx, ok := v.vocabulary[t]; ok {
			vec[idx]++
		}
	}
	for idx := range vec {
		vec[idx] *= v.idf[idx]
	}

	// Normalización L2 (como el coseno solo mira dirección, esto deja los
	// scores directamente comparables).
	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}
