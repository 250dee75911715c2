package registry

// locales is ordered; Locales() reports codes in this order.
var locales = []LocaleTable{
	{
		Code: "en_US",
		MaleNames: []string{
			"James", "Robert", "John", "Michael", "David", "William", "Richard", "Joseph",
			"Thomas", "Charles", "Daniel", "Matthew", "Anthony", "Mark", "Steven", "Andrew",
		},
		FemaleNames: []string{
			"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan", "Jessica",
			"Sarah", "Karen", "Lisa", "Nancy", "Betty", "Margaret", "Sandra", "Ashley",
		},
		LastNames: []string{
			"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
			"Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor", "Moore", "Jackson", "Martin",
		},
		Cities: []string{
			"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
			"San Antonio", "San Diego", "Dallas", "Austin", "Seattle", "Denver", "Boston", "Portland",
		},
		Countries: []string{"United States"},
		Streets: []string{
			"Main St", "Oak Ave", "Maple Dr", "Cedar Ln", "Elm St", "Pine Rd", "Walnut Ct",
			"Lake Blvd", "Washington Ave", "Park Pl", "River Rd", "Sunset Blvd",
		},
		AddressFormat:       "{number} {street}",
		PostalFormat:        "#####",
		PhoneFormat:         "(%##) 555-####",
		NationalIDFormat:    "9##-##-####",
		PassportFormat:      "%########",
		DriverLicenseFormat: "?############",
		BankAccountFormat:   "############",
		CompanySuffixes:     []string{"Inc.", "LLC", "Group", "Corp."},
		TLD:                 "com",
	},
	{
		Code: "en_GB",
		MaleNames: []string{
			"Oliver", "George", "Harry", "Jack", "Jacob", "Noah", "Charlie", "Thomas",
			"Oscar", "William", "James", "Henry",
		},
		FemaleNames: []string{
			"Olivia", "Amelia", "Isla", "Ava", "Emily", "Sophie", "Grace", "Lily",
			"Poppy", "Evie", "Ella", "Charlotte",
		},
		LastNames: []string{
			"Smith", "Jones", "Taylor", "Brown", "Williams", "Wilson", "Johnson", "Davies",
			"Robinson", "Wright", "Thompson", "Evans", "Walker", "White",
		},
		Cities: []string{
			"London", "Manchester", "Birmingham", "Leeds", "Glasgow", "Liverpool",
			"Bristol", "Sheffield", "Edinburgh", "Cardiff", "Belfast", "Nottingham",
		},
		Countries: []string{"United Kingdom"},
		Streets: []string{
			"High Street", "Station Road", "Church Lane", "Victoria Road", "Green Lane",
			"Manor Road", "Park Road", "Queens Road", "Kings Road", "Mill Lane",
		},
		AddressFormat:       "{number} {street}",
		PostalFormat:        "??# #??",
		PhoneFormat:         "+44 7### ######",
		NationalIDFormat:    "??######?",
		PassportFormat:      "#########",
		DriverLicenseFormat: "?????######??#??",
		BankAccountFormat:   "GB## ???? ###### ########",
		CompanySuffixes:     []string{"Ltd", "PLC", "& Sons", "Group"},
		TLD:                 "co.uk",
	},
	{
		Code: "fr_FR",
		MaleNames: []string{
			"Jean", "Pierre", "Michel", "André", "Philippe", "René", "Louis", "Alain",
			"Jacques", "Bernard", "François", "Émile", "Jérôme", "Thierry",
		},
		FemaleNames: []string{
			"Marie", "Jeanne", "Françoise", "Monique", "Catherine", "Nathalie", "Isabelle",
			"Hélène", "Chloé", "Léa", "Camille", "Élodie", "Anaïs",
		},
		LastNames: []string{
			"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit", "Durand",
			"Leroy", "Moreau", "Simon", "Laurent", "Lefèvre", "Girard",
		},
		Cities: []string{
			"Paris", "Marseille", "Lyon", "Toulouse", "Nice", "Nantes", "Strasbourg",
			"Montpellier", "Bordeaux", "Lille", "Rennes", "Reims",
		},
		Countries: []string{"France"},
		Streets: []string{
			"rue de la Paix", "avenue des Champs-Élysées", "rue Victor Hugo", "boulevard Saint-Michel",
			"rue de la République", "place de la Liberté", "rue Pasteur", "chemin des Vignes",
		},
		AddressFormat:       "{number} {street}",
		PostalFormat:        "%####",
		PhoneFormat:         "+33 6 ## ## ## ##",
		NationalIDFormat:    "%## ## ## ### ### ##",
		PassportFormat:      "##??#####",
		DriverLicenseFormat: "############",
		BankAccountFormat:   "FR## #### #### #### #### #### ###",
		CompanySuffixes:     []string{"SARL", "SA", "SAS", "et Associés"},
		TLD:                 "fr",
	},
	{
		Code: "de_DE",
		MaleNames: []string{
			"Hans", "Jürgen", "Klaus", "Stefan", "Uwe", "Thomas", "Michael", "Andreas",
			"Günter", "Lukas", "Jörg", "Maximilian",
		},
		FemaleNames: []string{
			"Ursula", "Monika", "Petra", "Sabine", "Renate", "Helga", "Brigitte", "Anna",
			"Lena", "Käthe", "Sophie", "Mia",
		},
		LastNames: []string{
			"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker",
			"Schulz", "Hoffmann", "Schäfer", "Koch", "Bauer", "Größer",
		},
		Cities: []string{
			"Berlin", "Hamburg", "München", "Köln", "Frankfurt am Main", "Stuttgart",
			"Düsseldorf", "Leipzig", "Dortmund", "Essen", "Bremen", "Dresden",
		},
		Countries: []string{"Deutschland"},
		Streets: []string{
			"Hauptstraße", "Schulstraße", "Gartenstraße", "Bahnhofstraße", "Dorfstraße",
			"Bergstraße", "Lindenstraße", "Kirchweg", "Am Markt", "Goethestraße",
		},
		AddressFormat:       "{street} {number}",
		PostalFormat:        "%####",
		PhoneFormat:         "+49 15# ########",
		NationalIDFormat:    "?########",
		PassportFormat:      "C???#####",
		DriverLicenseFormat: "?##########",
		BankAccountFormat:   "DE## #### #### #### #### ##",
		CompanySuffixes:     []string{"GmbH", "AG", "KG", "GmbH & Co. KG"},
		TLD:                 "de",
	},
	{
		Code: "es_ES",
		MaleNames: []string{
			"Antonio", "José", "Manuel", "Francisco", "David", "Juan", "Javier", "Daniel",
			"Jesús", "Sergio", "Ángel", "Rubén",
		},
		FemaleNames: []string{
			"María", "Carmen", "Ana", "Isabel", "Laura", "Lucía", "Cristina", "Marta",
			"Sofía", "Begoña", "Inés", "Pilar",
		},
		LastNames: []string{
			"García", "Rodríguez", "González", "Fernández", "López", "Martínez", "Sánchez",
			"Pérez", "Gómez", "Martín", "Jiménez", "Ruiz", "Hernández", "Muñoz",
		},
		Cities: []string{
			"Madrid", "Barcelona", "Valencia", "Sevilla", "Zaragoza", "Málaga", "Murcia",
			"Palma", "Bilbao", "Alicante", "Córdoba", "Valladolid",
		},
		Countries: []string{"España"},
		Streets: []string{
			"Calle Mayor", "Calle Real", "Avenida de la Constitución", "Plaza de España",
			"Calle del Sol", "Paseo de Gracia", "Calle Nueva", "Avenida Andalucía",
		},
		AddressFormat:       "{street}, {number}",
		PostalFormat:        "%####",
		PhoneFormat:         "+34 6## ### ###",
		NationalIDFormat:    "########?",
		PassportFormat:      "???######",
		DriverLicenseFormat: "########?",
		BankAccountFormat:   "ES## #### #### ## ##########",
		CompanySuffixes:     []string{"S.L.", "S.A.", "y Asociados"},
		TLD:                 "es",
	},
	{
		Code: "it_IT",
		MaleNames: []string{
			"Giuseppe", "Giovanni", "Antonio", "Mario", "Luigi", "Francesco", "Angelo",
			"Vincenzo", "Pietro", "Niccolò", "Marco", "Luca",
		},
		FemaleNames: []string{
			"Maria", "Anna", "Giuseppina", "Rosa", "Angela", "Giovanna", "Teresa",
			"Lucia", "Carmela", "Francesca", "Chiara", "Giulia",
		},
		LastNames: []string{
			"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano", "Colombo",
			"Ricci", "Marino", "Greco", "Bruno", "Gallo", "Conti", "De Luca",
		},
		Cities: []string{
			"Roma", "Milano", "Napoli", "Torino", "Palermo", "Genova", "Bologna",
			"Firenze", "Bari", "Catania", "Venezia", "Verona",
		},
		Countries: []string{"Italia"},
		Streets: []string{
			"Via Roma", "Via Garibaldi", "Corso Italia", "Via Mazzini", "Piazza del Duomo",
			"Via Dante", "Via Cavour", "Viale della Libertà",
		},
		AddressFormat:       "{street} {number}",
		PostalFormat:        "#####",
		PhoneFormat:         "+39 3## ### ####",
		NationalIDFormat:    "??????##?##?###?",
		PassportFormat:      "??#######",
		DriverLicenseFormat: "??#######?",
		BankAccountFormat:   "IT## ? ##### ##### ############",
		CompanySuffixes:     []string{"S.p.A.", "S.r.l.", "e Figli"},
		TLD:                 "it",
	},
	{
		Code: "pt_BR",
		MaleNames: []string{
			"João", "José", "Antônio", "Francisco", "Carlos", "Paulo", "Pedro", "Lucas",
			"Luiz", "Marcos", "Gabriel", "Rafael",
		},
		FemaleNames: []string{
			"Maria", "Ana", "Francisca", "Antônia", "Adriana", "Juliana", "Márcia",
			"Fernanda", "Patrícia", "Aline", "Camila", "Letícia",
		},
		LastNames: []string{
			"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira", "Alves",
			"Pereira", "Lima", "Gomes", "Ribeiro", "Carvalho", "Araújo", "Conceição",
		},
		Cities: []string{
			"São Paulo", "Rio de Janeiro", "Brasília", "Salvador", "Fortaleza",
			"Belo Horizonte", "Manaus", "Curitiba", "Recife", "Porto Alegre", "Belém", "Goiânia",
		},
		Countries: []string{"Brasil"},
		Streets: []string{
			"Rua das Flores", "Avenida Paulista", "Rua São João", "Avenida Brasil",
			"Rua XV de Novembro", "Rua da Consolação", "Avenida Atlântica", "Rua Augusta",
		},
		AddressFormat:       "{street}, {number}",
		PostalFormat:        "#####-###",
		PhoneFormat:         "+55 (%#) 9####-####",
		NationalIDFormat:    "###.###.###-##",
		PassportFormat:      "??######",
		DriverLicenseFormat: "###########",
		BankAccountFormat:   "BR## ######## ##### ########## ? #",
		CompanySuffixes:     []string{"Ltda.", "S.A.", "e Filhos"},
		TLD:                 "com.br",
	},
	{
		Code: "ar_SA",
		MaleNames: []string{
			"محمد", "عبدالله", "فهد", "خالد", "سعود", "عبدالعزيز", "سلطان", "فيصل",
			"تركي", "ناصر",
		},
		FemaleNames: []string{
			"نورة", "سارة", "فاطمة", "مريم", "عائشة", "هند", "ريم", "لطيفة",
			"جواهر", "منيرة",
		},
		LastNames: []string{
			"العتيبي", "الغامدي", "القحطاني", "الشهري", "الحربي", "الزهراني", "الدوسري",
			"المطيري", "السبيعي", "الشمري",
		},
		Cities: []string{
			"الرياض", "جدة", "مكة المكرمة", "المدينة المنورة", "الدمام", "الخبر",
			"الطائف", "تبوك", "أبها",
		},
		Countries: []string{"المملكة العربية السعودية"},
		Streets: []string{
			"طريق الملك فهد", "شارع العليا", "طريق الملك عبدالعزيز", "شارع التحلية",
			"طريق الأمير سلطان", "شارع الستين",
		},
		AddressFormat:       "{number} {street}",
		PostalFormat:        "%####",
		PhoneFormat:         "+966 5# ### ####",
		NationalIDFormat:    "1#########",
		PassportFormat:      "?########",
		DriverLicenseFormat: "##########",
		BankAccountFormat:   "SA## #### #### #### #### ####",
		CompanySuffixes:     []string{"المحدودة", "القابضة", "وشركاه"},
		TLD:                 "sa",
	},
	{
		Code: "ja_JP",
		MaleNames: []string{
			"翔太", "大輔", "健太", "拓也", "直樹", "浩", "誠", "蓮", "大翔", "悠真",
		},
		FemaleNames: []string{
			"陽子", "恵子", "美咲", "さくら", "結衣", "愛", "花子", "陽菜", "葵", "美羽",
		},
		LastNames: []string{
			"佐藤", "鈴木", "高橋", "田中", "伊藤", "渡辺", "山本", "中村", "小林", "加藤",
		},
		Cities: []string{
			"東京都", "大阪市", "横浜市", "名古屋市", "札幌市", "福岡市", "神戸市", "京都市",
		},
		Countries: []string{"日本"},
		Streets: []string{
			"中央区銀座", "港区六本木", "新宿区西新宿", "渋谷区神南", "北区梅田", "中区栄",
		},
		AddressFormat:       "{street}{number}",
		PostalFormat:        "###-####",
		PhoneFormat:         "+81 90-####-####",
		NationalIDFormat:    "#### #### ####",
		PassportFormat:      "??#######",
		DriverLicenseFormat: "############",
		BankAccountFormat:   "#######",
		CompanySuffixes:     []string{"株式会社", "有限会社", "合同会社"},
		TLD:                 "co.jp",
	},
	{
		Code: "zh_CN",
		MaleNames: []string{
			"伟", "强", "磊", "军", "洋", "勇", "杰", "涛", "明", "超",
		},
		FemaleNames: []string{
			"芳", "娜", "敏", "静", "丽", "艳", "秀英", "婷", "玲", "桂英",
		},
		LastNames: []string{
			"王", "李", "张", "刘", "陈", "杨", "黄", "赵", "吴", "周",
		},
		Cities: []string{
			"北京市", "上海市", "广州市", "深圳市", "成都市", "杭州市", "武汉市", "西安市",
		},
		Countries: []string{"中国"},
		Streets: []string{
			"人民路", "解放路", "中山路", "建设路", "和平路", "长江路",
		},
		AddressFormat:       "{street}{number}号",
		PostalFormat:        "%#####",
		PhoneFormat:         "+86 13# #### ####",
		NationalIDFormat:    "%#################",
		PassportFormat:      "E########",
		DriverLicenseFormat: "%#################",
		BankAccountFormat:   "62## #### #### #### ###",
		CompanySuffixes:     []string{"有限公司", "集团", "科技有限公司"},
		TLD:                 "cn",
	},
	{
		Code: "ru_RU",
		MaleNames: []string{
			"Александр", "Сергей", "Дмитрий", "Андрей", "Алексей", "Максим", "Иван",
			"Михаил", "Николай", "Владимир",
		},
		FemaleNames: []string{
			"Елена", "Ольга", "Наталья", "Татьяна", "Анна", "Мария", "Ирина",
			"Екатерина", "Светлана", "Юлия",
		},
		LastNames: []string{
			"Иванов", "Смирнов", "Кузнецов", "Попов", "Васильев", "Петров", "Соколов",
			"Михайлов", "Новиков", "Фёдоров",
		},
		Cities: []string{
			"Москва", "Санкт-Петербург", "Новосибирск", "Екатеринбург", "Казань",
			"Нижний Новгород", "Челябинск", "Самара",
		},
		Countries: []string{"Россия"},
		Streets: []string{
			"ул. Ленина", "ул. Мира", "ул. Советская", "пр. Победы", "ул. Гагарина",
			"ул. Пушкина", "Невский пр.",
		},
		AddressFormat:       "{street}, д. {number}",
		PostalFormat:        "%#####",
		PhoneFormat:         "+7 9## ###-##-##",
		NationalIDFormat:    "## ## ######",
		PassportFormat:      "## #######",
		DriverLicenseFormat: "## ## ######",
		BankAccountFormat:   "408#################",
		CompanySuffixes:     []string{"ООО", "АО", "ПАО"},
		TLD:                 "ru",
	},
	{
		Code: "nl_NL",
		MaleNames: []string{
			"Jan", "Johannes", "Pieter", "Kees", "Daan", "Sem", "Lucas", "Bram",
			"Thijs", "Joost", "Sjoerd", "Ruud",
		},
		FemaleNames: []string{
			"Maria", "Anna", "Johanna", "Emma", "Tess", "Sanne", "Fleur", "Julia",
			"Noor", "Lotte", "Femke", "Anouk",
		},
		LastNames: []string{
			"de Jong", "Jansen", "de Vries", "van den Berg", "van Dijk", "Bakker", "Janssen",
			"Visser", "Smit", "Meijer", "de Boer", "Mulder",
		},
		Cities: []string{
			"Amsterdam", "Rotterdam", "Den Haag", "Utrecht", "Eindhoven", "Groningen",
			"Tilburg", "Almere", "Breda", "Nijmegen",
		},
		Countries: []string{"Nederland"},
		Streets: []string{
			"Kerkstraat", "Dorpsstraat", "Molenweg", "Schoolstraat", "Stationsweg",
			"Prinsengracht", "Julianastraat", "Wilhelminastraat",
		},
		AddressFormat:       "{street} {number}",
		PostalFormat:        "%### ??",
		PhoneFormat:         "+31 6 ########",
		NationalIDFormat:    "#########",
		PassportFormat:      "??#######",
		DriverLicenseFormat: "##########",
		BankAccountFormat:   "NL## ???? #### #### ##",
		CompanySuffixes:     []string{"B.V.", "N.V.", "& Zonen"},
		TLD:                 "nl",
	},
	{
		Code: "pl_PL",
		MaleNames: []string{
			"Piotr", "Krzysztof", "Andrzej", "Tomasz", "Paweł", "Michał", "Marcin",
			"Łukasz", "Jakub", "Grzegorz", "Wojciech", "Mateusz",
		},
		FemaleNames: []string{
			"Anna", "Maria", "Katarzyna", "Małgorzata", "Agnieszka", "Barbara", "Ewa",
			"Magdalena", "Joanna", "Zofia", "Żaneta", "Aleksandra",
		},
		LastNames: []string{
			"Nowak", "Kowalski", "Wiśniewski", "Wójcik", "Kowalczyk", "Kamiński",
			"Lewandowski", "Zieliński", "Szymański", "Woźniak", "Dąbrowski", "Kozłowski",
		},
		Cities: []string{
			"Warszawa", "Kraków", "Łódź", "Wrocław", "Poznań", "Gdańsk", "Szczecin",
			"Bydgoszcz", "Lublin", "Katowice",
		},
		Countries: []string{"Polska"},
		Streets: []string{
			"ul. Polna", "ul. Leśna", "ul. Słoneczna", "ul. Krótka", "ul. Szkolna",
			"ul. Ogrodowa", "ul. Lipowa", "ul. Marszałkowska",
		},
		AddressFormat:       "{street} {number}",
		PostalFormat:        "##-###",
		PhoneFormat:         "+48 5## ### ###",
		NationalIDFormat:    "###########",
		PassportFormat:      "??#######",
		DriverLicenseFormat: "#####/##/####",
		BankAccountFormat:   "PL## #### #### #### #### #### ####",
		CompanySuffixes:     []string{"Sp. z o.o.", "S.A.", "i Wspólnicy"},
		TLD:                 "pl",
	},
	{
		Code: "tr_TR",
		MaleNames: []string{
			"Mehmet", "Mustafa", "Ahmet", "Ali", "Hüseyin", "Hasan", "İbrahim",
			"İsmail", "Osman", "Yusuf", "Emre", "Çağlar",
		},
		FemaleNames: []string{
			"Fatma", "Ayşe", "Emine", "Hatice", "Zeynep", "Elif", "Meryem", "Şerife",
			"Özlem", "Gülşen", "Büşra", "Derya",
		},
		LastNames: []string{
			"Yılmaz", "Kaya", "Demir", "Şahin", "Çelik", "Yıldız", "Yıldırım", "Öztürk",
			"Aydın", "Özdemir", "Arslan", "Doğan", "Kılıç", "Aslan",
		},
		Cities: []string{
			"İstanbul", "Ankara", "İzmir", "Bursa", "Antalya", "Konya", "Adana",
			"Gaziantep", "Şanlıurfa", "Kocaeli",
		},
		Countries: []string{"Türkiye"},
		Streets: []string{
			"Atatürk Caddesi", "Cumhuriyet Caddesi", "İstiklal Caddesi", "Gazi Bulvarı",
			"Menekşe Sokak", "Lale Sokak", "Bağdat Caddesi",
		},
		AddressFormat:       "{street} No: {number}",
		PostalFormat:        "%####",
		PhoneFormat:         "+90 5## ### ## ##",
		NationalIDFormat:    "%##########",
		PassportFormat:      "?########",
		DriverLicenseFormat: "######",
		BankAccountFormat:   "TR## #### #### #### #### #### ##",
		CompanySuffixes:     []string{"A.Ş.", "Ltd. Şti.", "ve Ortakları"},
		TLD:                 "com.tr",
	},
	{
		Code: "ar_TN",
		MaleNames: []string{
			"Mohamed", "Ahmed", "Ali", "Youssef", "Oussema", "Skander", "Mehdi",
			"Amine", "Karim", "Hamza", "Bilel", "Wassim",
		},
		FemaleNames: []string{
			"Fatma", "Amira", "Syrine", "Meriem", "Nour", "Rania", "Yasmine", "Ines",
			"Asma", "Khadija", "Salma", "Eya",
		},
		LastNames: []string{
			"Ben Ali", "Trabelsi", "Gharbi", "Hammami", "Jebali", "Mejri", "Ayari",
			"Bouazizi", "Chaabane", "Ghariani", "Sassi", "Dridi",
		},
		Cities: []string{
			"Tunis", "Sfax", "Sousse", "Kairouan", "Bizerte", "Gabès", "Ariana",
			"Gafsa", "Monastir", "Nabeul",
		},
		Countries: []string{"Tunisie"},
		Streets: []string{
			"Avenue Habib Bourguiba", "Rue de Marseille", "Avenue de la Liberté",
			"Rue Ibn Khaldoun", "Avenue Mohamed V", "Rue de Rome",
		},
		AddressFormat:       "{number} {street}",
		PostalFormat:        "%###",
		PhoneFormat:         "+216 %# ### ###",
		NationalIDFormat:    "0#######",
		PassportFormat:      "?#######",
		DriverLicenseFormat: "##/######",
		BankAccountFormat:   "TN## #### #### #### #### ####",
		CompanySuffixes:     []string{"SARL", "SA", "et Fils"},
		TLD:                 "tn",
	},
}
