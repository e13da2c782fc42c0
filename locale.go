package ubidi

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// DirectionFromEnvironment guesses a base text direction from the user's
// locale. It is intended as a paragraph-level hint for callers which have no
// better information about their input, e.g.
//
//    para.SetParagraph(text, ubidi.DirectionFromEnvironment().Level(), nil)
//
// Detection failures are traced and fall back to LeftToRight.
func DirectionFromEnvironment() Direction {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		userLocale = "en-US"
		T().Infof("UAX#9 sets default user locale %v", userLocale)
	} else {
		T().Infof("UAX#9 detected user locale %v", userLocale)
	}
	lang := language.Make(userLocale)
	script, _ := lang.Script()
	return directionForScript(script)
}

func directionForScript(script language.Script) Direction {
	switch script.String() {
	case
		"Arab", "Hebr", "Thaa", "Syrc",
		"Nkoo", "Adlm", "Rohg", "Mand",
		"Samr", "Mend", "Yezi":
		return RightToLeft
	}
	return LeftToRight
}
