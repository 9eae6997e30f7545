package i18n

import "github.com/greenpulse/pulseauth/session"

// Minimal built-in tables covering the session flows. Page-level string
// tables stay with the UI; callers merge their own via
// [Translator.WithBundle].
var builtinTables = map[session.Language]Table{
	session.LanguageEnglish: {
		"app": Table{
			"name": "GreenPulse",
		},
		"auth": Table{
			"login":         "Log in",
			"logout":        "Log out",
			"signup":        "Create account",
			"welcome":       "Welcome back, {name}",
			"sessionEnded":  "Your session has expired, please log in again",
			"loginFailed":   "Invalid email, password, or role",
			"signupExists":  "An account with this email already exists",
			"termsRequired": "Please accept the terms and conditions",
		},
	},
	session.LanguageHindi: {
		"app": Table{
			"name": "ग्रीनपल्स",
		},
		"auth": Table{
			"login":        "लॉग इन करें",
			"logout":       "लॉग आउट",
			"signup":       "खाता बनाएं",
			"welcome":      "वापसी पर स्वागत है, {name}",
			"sessionEnded": "आपका सत्र समाप्त हो गया है, कृपया फिर से लॉग इन करें",
		},
	},
	session.LanguageOdia: {
		"app": Table{
			"name": "ଗ୍ରୀନପଲ୍ସ",
		},
		"auth": Table{
			"login":        "ଲଗ୍ ଇନ୍ କରନ୍ତୁ",
			"logout":       "ଲଗ୍ ଆଉଟ୍",
			"signup":       "ଖାତା ଖୋଲନ୍ତୁ",
			"welcome":      "ପୁନଃ ସ୍ୱାଗତ, {name}",
			"sessionEnded": "ଆପଣଙ୍କ ସେସନ୍ ସମାପ୍ତ ହୋଇଛି, ଦୟାକରି ପୁଣି ଲଗ୍ ଇନ୍ କରନ୍ତୁ",
		},
	},
}
