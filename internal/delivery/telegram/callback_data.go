package telegram

import (
	"errors"
	"strconv"
	"strings"

	"github.com/aliskhannn/tahsin-quran-bot/internal/service"
)

// Callback action constants.
const (
	actionMenu     = "menu"
	actionMaterial = "material"
	actionQuiz     = "quiz"
	actionLetters  = "letters"
	actionLetter   = "letter"
)

// Quiz sub-actions.
const (
	quizStart   = "start"
	quizAnswer  = "ans"
	quizNext    = "next"
	quizRestart = "restart"
)

// Letters sub-actions.
const (
	lettersFilter  = "f"
	lettersOptions = "o"
)

// Filter option kinds for the options picker.
const (
	optionMakhraj       = "m"
	optionSifat         = "s"
	optionSifatTambahan = "t"
)

// maxCallbackDataLen is Telegram's limit for inline button payloads.
const maxCallbackDataLen = 64

var errBadCallback = errors.New("malformed callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// intParam parses the i-th parameter as an integer.
func (cd callbackData) intParam(i int) (int, error) {
	n, err := strconv.Atoi(cd.param(i))
	if err != nil {
		return 0, errBadCallback
	}
	return n, nil
}

// filterParams parses three consecutive filter indexes starting at i.
func (cd callbackData) filterParams(i int) (service.FilterIndexes, error) {
	m, err1 := cd.intParam(i)
	s, err2 := cd.intParam(i + 1)
	t, err3 := cd.intParam(i + 2)
	if err1 != nil || err2 != nil || err3 != nil {
		return service.FilterIndexes{}, errBadCallback
	}
	return service.FilterIndexes{Makhraj: m, Sifat: s, SifatTambahan: t}, nil
}

func filterStrings(idx service.FilterIndexes) []string {
	return []string{
		strconv.Itoa(idx.Makhraj),
		strconv.Itoa(idx.Sifat),
		strconv.Itoa(idx.SifatTambahan),
	}
}

func buildMenuCallback() string {
	return actionMenu
}

// buildMaterialCallback opens a material overview.
func buildMaterialCallback(id string) string {
	return callbackData{Action: actionMaterial, Params: []string{id}}.encode()
}

// buildSectionCallback opens the section at index of a material.
func buildSectionCallback(id string, index int) string {
	return callbackData{Action: actionMaterial, Params: []string{id, strconv.Itoa(index)}}.encode()
}

func buildQuizStartCallback(materialID string) string {
	return callbackData{Action: actionQuiz, Params: []string{quizStart, materialID}}.encode()
}

// buildQuizAnswerCallback builds callback data for answering a quiz question.
func buildQuizAnswerCallback(token string, position, answerIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{
			quizAnswer,
			token,
			strconv.Itoa(position),
			strconv.Itoa(answerIndex),
		},
	}.encode()
}

func buildQuizNextCallback(token string, position int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizNext, token, strconv.Itoa(position)},
	}.encode()
}

func buildQuizRestartCallback(token string) string {
	return callbackData{Action: actionQuiz, Params: []string{quizRestart, token}}.encode()
}

// buildLettersCallback lists letters with the given filter.
func buildLettersCallback(idx service.FilterIndexes) string {
	params := append([]string{lettersFilter}, filterStrings(idx)...)
	return callbackData{Action: actionLetters, Params: params}.encode()
}

// buildLetterOptionsCallback opens the option picker of one filter kind.
func buildLetterOptionsCallback(kind string, idx service.FilterIndexes) string {
	params := append([]string{lettersOptions, kind}, filterStrings(idx)...)
	return callbackData{Action: actionLetters, Params: params}.encode()
}

// buildLetterCallback opens a letter detail, remembering the list filter.
func buildLetterCallback(index int, idx service.FilterIndexes) string {
	params := append([]string{strconv.Itoa(index)}, filterStrings(idx)...)
	return callbackData{Action: actionLetter, Params: params}.encode()
}
