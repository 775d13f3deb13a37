package stoplist

// DefaultExact lists Italian words dropped from every count.
var DefaultExact = []string{
	// prepositions, articles, subjects
	"il", "lo", "la", "li", "i", "gli", "le", "un", "uno", "una",
	"di", "a", "da", "in", "con", "su", "per", "tra", "fra",
	"due", "tre", "dei", "del", "all", "ai", "al", "ad",
	"dal", "dall", "nel", "sul", "sugli", "degli", "agli", "negli",
	"verso",
	// pronouns
	"mi", "ci", "ti", "si", "me", "cui",
	"io", "tu", "lui", "lei", "noi", "voi", "essi", "essa", "esso", "loro",
	// adjectives
	"bene", "male", "vari", "varie", "qualche",
	// generic nouns
	"sorta", "cosa", "qualcosa", "posto", "posti", "zona", "parte", "volta", "volte",
	// adverbs and conjunctions
	"solamente", "sopra", "sotto", "giù", "già", "senza", "ora", "adesso",
	"avanti", "dietro", "comunque", "dove", "quando", "poi", "prima", "dopo", "mentre",
	"quindi", "ancora", "là", "lì", "più", "meno", "po’", "po",
	"e", "ed", "ma", "se", "perché", "perchè", "come", "che", "anche", "ne", "non",
	// irregular verbs
	"avere", "ho", "hai", "ha", "abbiamo", "avete", "hanno",
	"essere", "sono", "sei", "è", "c’è", "siamo", "siete", "sia",
	"andare", "vado", "vai", "va", "andiamo", "andate", "vanno",
	"venire", "vengo", "vieni", "viene", "veniamo", "venite", "vengono",
	"dare", "do", "dai", "dà", "diamo", "date", "danno", "darmi",
	"dire", "dico", "dici", "dice", "diciamo", "dite", "dicono",
	"fare", "faccio", "fai", "fa", "facciamo", "fate", "fanno", "farmi", "farlo", "farli",
	"potere", "posso", "puoi", "può", "possiamo", "potete", "possono",
	"volere", "voglio", "vuoi", "vuole", "vogliamo", "volete", "vogliono", "volermi",
	"sapere", "so", "sai", "sa", "sappiamo", "sapete", "sanno",
	"stare", "sto", "stai", "sta", "stiamo", "state", "stanno", "starmi",
	// regular verbs
	"riuscire", "riusciamo", "riuscite", "riescono", "risucirmi",
	"dovere", "dobbiamo", "dovete", "devono", "dovermi",
	"parlare", "parliamo", "parlate", "parlano", "parlarmi",
	"chiedere", "chiediamo", "chiedete", "chiedono", "chiedermi",
	"prendere", "prendiamo", "prendete", "prendono", "prendermi",
	"decidere", "decidiamo", "decidete", "decidono",
	"sembrare", "sembriamo", "sembrate", "sembrano", "sembrarmi",
	"rendere", "rendiamo", "rendete", "rendono", "rendermi",
	"provare", "proviamo", "provate", "provano", "provarmi",
	"arrivare", "arriviamo", "arrivate", "arrivano",
	"pare",
	// perception verbs
	"vedere", "vediamo", "vedete", "vedono", "vedermi", "visto", "visti", "viste",
	"guardare", "guardiamo", "guardate", "guardano", "guardarmi",
	"notare", "notiamo", "notate", "notano",
}

// DefaultWildcards lists "prefix*" patterns catching one trailing inflection letter.
var DefaultWildcards = []string{
	"oggett*", "lat*", "qualcun*",
	"quest*", "quell*", "dell*", "del*",
	"all*", "sull*", "dall*", "nell*",
	"molt*", "poc*", "poch*", "tropp*", "altr*", "vari*",
	"tutt*", "alt*", "bass*", "lung*", "alcun*", "grand*",
	"mi*", "tu*", "su*",
	"stat*", "avut*",
	"fatt*", "arrivat*",
	"riesc*", "dev*",
	"parl*", "chied*",
	"prend*", "decid*", "sembr*",
	"rend*", "prov*", "arriv*",
	"ved*", "guard*", "not*",
}

// DefaultPhrases lists idioms removed before tokenization.
var DefaultPhrases = []string{
	"rendere conto", "rendo conto", "rendi conto", "rende conto",
	"rendiamo conto", "rendete conto", "rendono conto", "rendermi conto",
	"andare via", "vado via", "andiamo via", "mettere via",
	"metterlo via", "metterla via",
}
