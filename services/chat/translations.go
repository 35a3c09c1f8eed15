package chat

// translations holds the canned-response fragments for one language variant.
// Non-English tables override only the fragments the storefront copy was
// translated for; the rest fall back to English.
type translations struct {
	welcome             string
	pricedAt            string
	originally          string
	madeFrom            string
	availableInSizes    string
	colorsAvailable     string
	rating              string
	starRating          string
	reviews             string
	productsUnder       string
	productsUnderPKR    string
	greatValue          string
	inRange             string
	rangeWord           string
	beautifulOptions    string
	perfectBalance      string
	premiumCollection   string
	finestPieces        string
	newArrivalsFeatures string
	latestDesigns       string
	checkTrends         string
	readyToWearHas      string
	completeOutfits     string
	perfectImmediate    string
	unstitchedOffers    string
	premiumFabric       string
	perfectCustom       string
	sizesAvailable      string
	fabricsInclude      string
	colorsInclude       string
	currentlyInStock    string
	outOf               string
	productsInStock     string
	shippingInfo        string
	priceRange          string
	to                  string
	canHelp             string
	nameRequest         string
	welcomeNamed        string
	paymentInstructions string
}

var englishTranslations = translations{
	welcome:             "Hello! Welcome to KK-Clothing. I'm your AI assistant and can help you with detailed information about our products, prices, sizes, colors, and more. What would you like to know?",
	pricedAt:            "is priced at PKR",
	originally:          "originally PKR",
	madeFrom:            "It's made from",
	availableInSizes:    "and available in sizes",
	colorsAvailable:     "Colors available:",
	rating:              "This product has a",
	starRating:          "star rating from",
	reviews:             "reviews",
	productsUnder:       "We have",
	productsUnderPKR:    "products under PKR",
	greatValue:          "These are great value options with excellent quality",
	inRange:             "In the PKR",
	rangeWord:           "range, we have",
	beautifulOptions:    "beautiful options:",
	perfectBalance:      "Perfect balance of quality and affordability",
	premiumCollection:   "Our premium collection (above PKR 10000) includes:",
	finestPieces:        "These are our finest pieces with superior craftsmanship",
	newArrivalsFeatures: "Our New Arrivals collection features",
	latestDesigns:       "latest designs:",
	checkTrends:         "Check out our latest fashion trends!",
	readyToWearHas:      "Ready to Wear collection has",
	completeOutfits:     "complete outfits:",
	perfectImmediate:    "Perfect for immediate use!",
	unstitchedOffers:    "Our Unstitched collection offers",
	premiumFabric:       "premium fabric options:",
	perfectCustom:       "Perfect for custom tailoring to your measurements",
	sizesAvailable:      "We offer sizes: Small (S), Medium (M), Large (L), Extra Large (XL), and XXL for most products",
	fabricsInclude:      "We use premium quality fabrics including:",
	colorsInclude:       "Our products are available in various colors including:",
	currentlyInStock:    "Currently",
	outOf:               "out of",
	productsInStock:     "products are in stock",
	shippingInfo:        "We provide worldwide shipping with tracking support. Delivery times: 3-7 business days locally, 7-14 days internationally",
	priceRange:          "Our products range from PKR",
	to:                  "to PKR",
	canHelp:             "I can help you with specific product information including prices, sizes, colors, fabrics, and availability",
	nameRequest:         "I'd be happy to connect you with our team! May I have your name first, so they know who to get back to?",
	welcomeNamed:        "Thank you! Our team has been notified and will get back to you shortly. Meanwhile, feel free to ask me anything about our products.",
	paymentInstructions: "For payments we accept card and bank transfer. Bank details: KK-Clothing, account shared at checkout. Your order is confirmed once the payment succeeds.",
}

// translationFor returns the fragment table for lang, with English filling
// any fragment the translated copy never covered.
func translationFor(lang Language) translations {
	t := englishTranslations
	switch lang {
	case LangUrdu:
		t.welcome = "السلام علیکم! KK-Clothing میں خوش آمدید۔ میں آپ کا AI اسسٹنٹ ہوں اور آپ کو ہمارے پروڈکٹس، قیمتوں، سائزز، رنگوں کے بارے میں تفصیلی معلومات فراہم کر سکتا ہوں۔ آپ کیا جاننا چاہتے ہیں؟"
		t.pricedAt = "کی قیمت PKR"
		t.originally = "اصل قیمت PKR"
		t.madeFrom = "یہ بنا ہے"
		t.availableInSizes = "اور دستیاب سائزز"
		t.colorsAvailable = "دستیاب رنگ:"
		t.rating = "اس پروڈکٹ کو"
		t.starRating = "ستارے کی ریٹنگ ملی ہے"
		t.reviews = "جائزوں سے"
		t.productsUnder = "ہمارے پاس"
		t.productsUnderPKR = "پروڈکٹس ہیں PKR"
		t.greatValue = "یہ بہترین کوالٹی کے ساتھ قیمتی آپشنز ہیں"
		t.inRange = "PKR"
		t.rangeWord = "کی رینج میں، ہمارے پاس"
		t.beautifulOptions = "خوبصورت آپشنز ہیں:"
		t.perfectBalance = "کوالٹی اور سستی کا بہترین توازن"
		t.premiumCollection = "ہمارا پریمیم کلیکشن (PKR 10000 سے اوپر) شامل ہے:"
		t.finestPieces = "یہ ہمارے بہترین کاریگری کے ٹکڑے ہیں"
		t.nameRequest = "میں آپ کو ہماری ٹیم سے ملانا چاہوں گا! پہلے اپنا نام بتائیں تاکہ ٹیم جان سکے کہ کس سے رابطہ کرنا ہے؟"
		t.welcomeNamed = "شکریہ! ہماری ٹیم کو اطلاع دے دی گئی ہے اور وہ جلد رابطہ کرے گی۔ اس دوران پروڈکٹس کے بارے میں کچھ بھی پوچھیں۔"
		t.paymentInstructions = "ادائیگی کے لیے کارڈ اور بینک ٹرانسفر دونوں قبول ہیں۔ بینک کی تفصیلات چیک آؤٹ پر دی جاتی ہیں۔"
	case LangRomanUrdu:
		t.welcome = "Salam! KK-Clothing mein khush amdeed. Main aap ka AI assistant hun aur aap ko hamare products, prices, sizes, colors ke bare mein detailed information de sakta hun. Aap kya jana chahte hain?"
		t.pricedAt = "ki qeemat hai PKR"
		t.originally = "asal qeemat PKR"
		t.madeFrom = "Ye bana hai"
		t.availableInSizes = "aur available sizes"
		t.colorsAvailable = "Available colors:"
		t.rating = "Is product ko mila hai"
		t.starRating = "star rating"
		t.reviews = "reviews se"
		t.productsUnder = "Hamare paas hain"
		t.productsUnderPKR = "products PKR"
		t.greatValue = "Ye bohot ache quality ke sath valuable options hain"
		t.inRange = "PKR"
		t.rangeWord = "ki range mein, hamare paas"
		t.beautifulOptions = "khoobsurat options hain:"
		t.perfectBalance = "Quality aur affordability ka perfect balance"
		t.premiumCollection = "Hamara premium collection (PKR 10000 se upar) shamil hai:"
		t.finestPieces = "Ye hamare behtareen craftsmanship ke pieces hain"
		t.nameRequest = "Main aap ko hamari team se connect karna chahunga! Pehle apna naam bata dein taake team ko pata ho kis se raabta karna hai?"
		t.welcomeNamed = "Shukriya! Hamari team ko inform kar diya gaya hai, woh jald raabta karegi. Is dauran products ke bare mein kuch bhi poochein."
		t.paymentInstructions = "Payment ke liye card aur bank transfer dono accept hain. Bank details checkout par milti hain."
	case LangHindi:
		t.welcome = "नमस्ते! KK-Clothing में आपका स्वागत है। मैं आपका AI सहायक हूं और आपको हमारे उत्पादों, कीमतों, साइज़, रंगों के बारे में विस्तृत जानकारी दे सकता हूं। आप क्या जानना चाहते हैं?"
		t.pricedAt = "की कीमत है PKR"
		t.originally = "मूल कीमत PKR"
		t.madeFrom = "यह बना है"
		t.availableInSizes = "और उपलब्ध साइज़"
		t.colorsAvailable = "उपलब्ध रंग:"
		t.rating = "इस उत्पाद को मिली है"
		t.starRating = "स्टार रेटिंग"
		t.reviews = "समीक्षाओं से"
		t.productsUnder = "हमारे पास हैं"
		t.productsUnderPKR = "उत्पाद PKR"
		t.greatValue = "ये बेहतरीन गुणवत्ता के साथ मूल्यवान विकल्प हैं"
	case LangRomanHindi:
		t.welcome = "Namaste! KK-Clothing mein aapka swagat hai. Main aapka AI sahayak hun aur aapko hamare products, prices, sizes, colors ke bare mein detailed information de sakta hun. Aap kya janna chahte hain?"
		t.pricedAt = "ki keemat hai PKR"
		t.originally = "mul keemat PKR"
		t.madeFrom = "Ye bana hai"
		t.availableInSizes = "aur available sizes"
		t.colorsAvailable = "Available colors:"
		t.rating = "Is product ko mili hai"
		t.starRating = "star rating"
		t.reviews = "reviews se"
		t.productsUnder = "Hamare paas hain"
		t.productsUnderPKR = "products PKR"
		t.greatValue = "Ye behtareen quality ke sath valuable options hain"
	}
	return t
}
