package syntax

// BCP-47 language tag, eg "en" or "pt-BR". Only the shape is checked, and the string is kept exactly as given.
type Language string

const maxLanguageLen = 128

func ParseLanguage(raw string) (Language, error) {
	if err := checkGrammar("language", raw, maxLanguageLen, languageGrammar); err != nil {
		return "", err
	}
	return Language(raw), nil
}

func (l Language) String() string {
	return string(l)
}

func (l Language) MarshalText() ([]byte, error) {
	return []byte(l), nil
}

func (l *Language) UnmarshalText(text []byte) error {
	lang, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}
	*l = lang
	return nil
}
