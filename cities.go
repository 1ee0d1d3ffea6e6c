package coldlead

// Cities lists Slovak towns that commonly trail company names, e.g.
// "Plynár Bratislava". Order is the scan order of StripCity.
var Cities = []string{
	"Bratislava", "Košice", "Prešov", "Žilina", "Banská Bystrica", "Nitra",
	"Trnava", "Trenčín", "Martin", "Poprad", "Prievidza", "Zvolen",
	"Považská Bystrica", "Nové Zámky", "Michalovce", "Spišská Nová Ves",
	"Komárno", "Levice", "Humenné", "Bardejov", "Liptovský Mikuláš",
	"Lučenec", "Piešťany", "Ružomberok", "Topoľčany", "Trebišov", "Čadca",
	"Dubnica nad Váhom", "Rimavská Sobota", "Partizánske",
	"Vranov nad Topľou", "Dunajská Streda", "Pezinok", "Brezno", "Senica",
	"Snina", "Žiar nad Hronom", "Rožňava", "Dolný Kubín",
	"Bánovce nad Bebravou", "Púchov", "Malacky", "Handlová", "Kežmarok",
	"Stará Ľubovňa", "Sereď", "Kysucké Nové Mesto", "Galanta", "Detva",
	"Levoča", "Skalica", "Senec", "Veľký Krtíš", "Poltár", "Revúca",
	"Myjava", "Svidník", "Nová Baňa", "Sabinov", "Šamorín", "Štúrovo",
	"Bytča", "Holíč", "Stropkov", "Kolárovo", "Šurany", "Fiľakovo",
	"Stupava", "Veľké Kapušany", "Moldava nad Bodvou", "Vráble",
	"Banská Štiavnica", "Modra",
}
