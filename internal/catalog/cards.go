// internal/catalog/cards.go
package catalog

import "cardhawk/internal/domain"

// defaultCards is the hand-curated catalog. Ids must stay unique; Load rejects duplicates.
var defaultCards = []domain.Card{
	{
		ID:          "amex-gold",
		Issuer:      "American Express",
		Name:        "Gold Card",
		DisplayName: "American Express® Gold Card",
		Network:     domain.NetworkAmex,
		AnnualFee:   250,
		EarningRates: []domain.EarningRate{
			{Category: "dining", Rate: 4.0, Description: "4X Membership Rewards® points at Restaurants worldwide"},
			{Category: "grocery", Rate: 4.0, Description: "4X points at U.S. supermarkets (on up to $25,000 per year, then 1X)"},
			{Category: "flights", Rate: 3.0, Description: "3X points on flights booked directly with airlines or on amextravel.com"},
			{Category: "other", Rate: 1.0, Description: "1X points on all other eligible purchases"},
		},
		Perks: []domain.Perk{
			{Title: "$120 Uber Cash", Description: "$10 in Uber Cash each month for Uber Eats orders or Uber rides in the U.S."},
			{Title: "$120 Dining Credit", Description: "$10 monthly statement credit when you pay with Gold Card at Grubhub, Seamless, The Cheesecake Factory, Ruth's Chris Steak House, and more"},
			{Title: "No Foreign Transaction Fees", Description: "Use your Card around the world with no foreign transaction fees"},
			{Title: "Baggage Insurance Plan", Description: "If your bags are lost or damaged by the carrier, you're covered"},
			{Title: "Global Dining Access", Description: "Access to reservations at exclusive restaurants through Global Dining Access by Resy"},
			{Title: "Cell Phone Protection", Description: "Get up to $800 per claim ($50 deductible) for covered theft or damage"},
		},
		Bonuses: []domain.Bonus{
			{Title: "Welcome Bonus", Description: "Earn 60,000 Membership Rewards® points after you spend $6,000 on eligible purchases within the first 6 months", Value: "$1,200 value when transferred to airline partners"},
		},
		PointValue: 2.0,
		PointsName: "Membership Rewards®",
	},
	{
		ID:          "amex-platinum",
		Issuer:      "American Express",
		Name:        "Platinum Card",
		DisplayName: "The Platinum Card® from American Express",
		Network:     domain.NetworkAmex,
		AnnualFee:   695,
		EarningRates: []domain.EarningRate{
			{Category: "flights", Rate: 5.0, Description: "5X Membership Rewards® points on flights booked directly with airlines or with Amex Travel"},
			{Category: "hotels", Rate: 5.0, Description: "5X points on prepaid hotels booked with Amex Travel"},
			{Category: "other", Rate: 1.0, Description: "1X points on all other eligible purchases"},
		},
		Perks: []domain.Perk{
			{Title: "$200 Hotel Credit", Description: "Receive up to $200 in statement credits annually for prepaid Fine Hotels + Resorts® or The Hotel Collection bookings"},
			{Title: "$200 Airline Credit", Description: "Receive up to $200 in statement credits per calendar year for incidental fees with your selected airline"},
			{Title: "$189 CLEAR® Credit", Description: "Receive up to $189 per calendar year in statement credits for CLEAR® Plus membership"},
			{Title: "$240 Digital Entertainment Credit", Description: "Up to $20/month in statement credits for eligible purchases (select streaming services, Audible, NY Times, etc.)"},
			{Title: "$155 Walmart+ Credit", Description: "Receive up to $155 in Walmart+ statement credits annually"},
			{Title: "$100 Saks Credit", Description: "$50 statement credit in January and July for purchases at Saks Fifth Avenue"},
			{Title: "$50 Equinox Credit", Description: "Up to $300 per year in statement credits toward an Equinox+ subscription or Equinox club membership"},
			{Title: "Global Lounge Collection", Description: "Complimentary access to 1,400+ airport lounges including Centurion Lounges, Delta Sky Club, and Priority Pass"},
			{Title: "Marriott Bonvoy Gold Elite", Description: "Complimentary Marriott Bonvoy Gold Elite Status"},
			{Title: "Hilton Honors Gold Status", Description: "Complimentary Hilton Honors Gold Status"},
			{Title: "Global Entry or TSA PreCheck", Description: "Receive up to $100 credit for Global Entry or TSA PreCheck application fee every 4 years"},
			{Title: "Fine Hotels + Resorts", Description: "Daily breakfast, room upgrades, and more at 1,200+ luxury properties"},
		},
		Bonuses: []domain.Bonus{
			{Title: "Welcome Bonus", Description: "Earn 80,000 Membership Rewards® points after you spend $8,000 on eligible purchases within the first 6 months", Value: "$1,600 value when transferred to airline partners"},
		},
		PointValue: 2.0,
		PointsName: "Membership Rewards®",
	},
	{
		ID:          "amex-delta-reserve",
		Issuer:      "American Express",
		Name:        "Delta SkyMiles® Reserve",
		DisplayName: "Delta SkyMiles® Reserve American Express Card",
		Network:     domain.NetworkAmex,
		AnnualFee:   650,
		EarningRates: []domain.EarningRate{
			{Category: "delta", Rate: 3.0, Description: "3X Miles on eligible purchases made directly with Delta"},
			{Category: "hotels", Rate: 3.0, Description: "3X Miles on eligible purchases at hotels"},
			{Category: "dining", Rate: 3.0, Description: "3X Miles at restaurants worldwide, including takeout and delivery"},
			{Category: "other", Rate: 1.0, Description: "1X Mile on all other eligible purchases"},
		},
		Perks: []domain.Perk{
			{Title: "Companion Certificate", Description: "Receive a Domestic First Class Companion Certificate each year upon renewal. Pay taxes and fees from $75"},
			{Title: "$250 Delta Flight Credit", Description: "Receive up to $250 per calendar year in statement credits for eligible Delta purchases"},
			{Title: "Delta Sky Club® Access", Description: "Complimentary access to Delta Sky Club when traveling on Delta. Guest access available for $39"},
			{Title: "First Bag Free", Description: "You and up to 8 guests on your reservation receive your first checked bag free on Delta flights"},
			{Title: "Priority Boarding", Description: "Enjoy Main Cabin 1 Priority Boarding on Delta flights"},
			{Title: "20% In-Flight Savings", Description: "Receive 20% back in the form of a statement credit on eligible Delta in-flight purchases"},
			{Title: "Medallion® Qualification Boosts", Description: "Earn 15,000 Medallion Qualification Miles (MQMs) and 15,000 Medallion Qualification Dollars (MQDs) after $30,000 in spend, plus an additional 15,000 MQMs and 15,000 MQDs after $60,000 (30,000 MQMs and MQDs total)"},
			{Title: "No Foreign Transaction Fees", Description: "Explore the world with no foreign transaction fees on international purchases"},
			{Title: "Global Entry or TSA PreCheck", Description: "Receive up to $100 credit for Global Entry or TSA PreCheck application fee every 4 years"},
		},
		Bonuses: []domain.Bonus{
			{Title: "Welcome Bonus", Description: "Earn 80,000 bonus Miles after you spend $6,000 in eligible purchases within your first 6 months of Card Membership", Value: "Worth $800-$1,200 in Delta flights"},
		},
		PointValue: 1.2,
		PointsName: "Delta SkyMiles®",
	},
	{
		ID:          "chase-sapphire-preferred",
		Issuer:      "Chase",
		Name:        "Sapphire Preferred",
		DisplayName: "Chase Sapphire Preferred®",
		Network:     domain.NetworkVisa,
		AnnualFee:   95,
		EarningRates: []domain.EarningRate{
			{Category: "dining", Rate: 3.0, Description: "3X points on dining including eligible delivery services"},
			{Category: "flights", Rate: 2.0, Description: "2X points on travel purchased through Chase Travel℠"},
			{Category: "hotels", Rate: 2.0, Description: "2X points on travel including hotels"},
			{Category: "grocery", Rate: 3.0, Description: "3X points on online grocery purchases (excluding Target, Walmart and wholesale clubs)"},
			{Category: "other", Rate: 1.0, Description: "1X point on all other purchases"},
		},
		Perks: []domain.Perk{
			{Title: "25% More Value on Travel", Description: "Earn 25% more value when you redeem points for travel through Chase Travel℠"},
			{Title: "$50 Annual Hotel Credit", Description: "Receive up to $50 annually in statement credits for hotel stays"},
			{Title: "No Foreign Transaction Fees", Description: "Use your card abroad with no foreign transaction fees"},
			{Title: "Trip Cancellation/Interruption Insurance", Description: "Reimbursed up to $10,000 per trip for prepaid, non-refundable expenses"},
			{Title: "Auto Rental Collision Damage Waiver", Description: "Decline the rental company's collision insurance and charge the entire rental to your card"},
			{Title: "Purchase Protection", Description: "Covers your new purchases for 120 days against damage or theft up to $500 per claim"},
		},
		Bonuses: []domain.Bonus{
			{Title: "Welcome Bonus", Description: "Earn 60,000 bonus points after you spend $4,000 on purchases in the first 3 months", Value: "$750 toward travel when redeemed through Chase Travel℠"},
		},
		PointValue: 1.25,
		PointsName: "Ultimate Rewards®",
	},
	{
		ID:          "chase-sapphire-reserve",
		Issuer:      "Chase",
		Name:        "Sapphire Reserve",
		DisplayName: "Chase Sapphire Reserve®",
		Network:     domain.NetworkVisa,
		AnnualFee:   550,
		EarningRates: []domain.EarningRate{
			{Category: "dining", Rate: 3.0, Description: "3X points on dining including eligible delivery services"},
			{Category: "flights", Rate: 3.0, Description: "3X points on travel purchased through Chase Travel℠"},
			{Category: "hotels", Rate: 3.0, Description: "3X points on travel including hotels"},
			{Category: "other", Rate: 1.0, Description: "1X point on all other purchases"},
		},
		Perks: []domain.Perk{
			{Title: "$300 Annual Travel Credit", Description: "Receive up to $300 annually as a statement credit for travel purchases"},
			{Title: "50% More Value on Travel", Description: "Earn 50% more value when you redeem points for travel through Chase Travel℠"},
			{Title: "Priority Pass™ Lounge Access", Description: "Complimentary membership with access to 1,300+ airport lounges worldwide"},
			{Title: "$100 Global Entry or TSA PreCheck Credit", Description: "Receive statement credit every 4 years for application fee"},
			{Title: "Lyft Pink Membership", Description: "Complimentary Lyft Pink membership through March 2025"},
			{Title: "No Foreign Transaction Fees", Description: "Use your card abroad with no foreign transaction fees"},
			{Title: "DoorDash Benefits", Description: "Complimentary DashPass subscription and statement credits"},
		},
		Bonuses: []domain.Bonus{
			{Title: "Welcome Bonus", Description: "Earn 75,000 bonus points after you spend $4,000 on purchases in the first 3 months", Value: "$1,125 toward travel when redeemed through Chase Travel℠"},
		},
		PointValue: 1.5,
		PointsName: "Ultimate Rewards®",
	},
	{
		ID:          "chase-freedom-unlimited",
		Issuer:      "Chase",
		Name:        "Freedom Unlimited",
		DisplayName: "Chase Freedom Unlimited®",
		Network:     domain.NetworkVisa,
		AnnualFee:   0,
		EarningRates: []domain.EarningRate{
			{Category: "dining", Rate: 3.0, Description: "3% cash back on dining including eligible delivery services"},
			{Category: "drugstores", Rate: 3.0, Description: "3% cash back on drugstore purchases"},
			{Category: "flights", Rate: 5.0, Description: "5% cash back on travel purchased through Chase Travel℠"},
			{Category: "other", Rate: 1.5, Description: "1.5% cash back on all other purchases"},
		},
		Perks: []domain.Perk{
			{Title: "No Annual Fee", Description: "Enjoy premium benefits without paying an annual fee"},
			{Title: "0% Intro APR", Description: "0% intro APR on purchases and balance transfers for 15 months"},
			{Title: "No Foreign Transaction Fees", Description: "Use your card abroad with no foreign transaction fees"},
			{Title: "Cell Phone Protection", Description: "Up to $600 protection per claim against covered theft or damage"},
		},
		Bonuses: []domain.Bonus{
			{Title: "Welcome Bonus", Description: "Earn $200 bonus cash back after you spend $500 on purchases in the first 3 months", Value: "$200 cash back"},
		},
		PointValue: 1.0,
		PointsName: "Cash Back",
	},
	{
		ID:          "capital-one-venture-x",
		Issuer:      "Capital One",
		Name:        "Venture X",
		DisplayName: "Capital One Venture X Rewards",
		Network:     domain.NetworkVisa,
		AnnualFee:   395,
		EarningRates: []domain.EarningRate{
			{Category: "flights", Rate: 10.0, Description: "10X miles on hotels and rental cars booked through Capital One Travel"},
			{Category: "hotels", Rate: 10.0, Description: "10X miles on hotels and rental cars booked through Capital One Travel"},
			{Category: "other", Rate: 2.0, Description: "2X miles on all other purchases"},
		},
		Perks: []domain.Perk{
			{Title: "$300 Annual Travel Credit", Description: "Receive up to $300 annually in statement credits for bookings through Capital One Travel"},
			{Title: "Priority Pass™ Lounge Access", Description: "Unlimited complimentary access to 1,300+ lounges. Bring 2 guests for free"},
			{Title: "Capital One Lounge Access", Description: "Access to Capital One Lounges with premium amenities"},
			{Title: "$100 Global Entry or TSA PreCheck Credit", Description: "Receive statement credit every 4 years for application fee"},
			{Title: "Anniversary Bonus Miles", Description: "Earn 10,000 bonus miles each account anniversary year"},
			{Title: "Hertz President's Circle Status", Description: "Complimentary elite status with Hertz"},
		},
		Bonuses: []domain.Bonus{
			{Title: "Welcome Bonus", Description: "Earn 75,000 bonus miles after you spend $4,000 on purchases in the first 3 months", Value: "$750 toward travel"},
		},
		PointValue: 1.0,
		PointsName: "Miles",
	},
	{
		ID:          "capital-one-savor",
		Issuer:      "Capital One",
		Name:        "SavorOne",
		DisplayName: "Capital One SavorOne Cash Rewards",
		Network:     domain.NetworkMastercard,
		AnnualFee:   0,
		EarningRates: []domain.EarningRate{
			{Category: "dining", Rate: 3.0, Description: "3% cash back on dining and entertainment"},
			{Category: "grocery", Rate: 3.0, Description: "3% cash back at grocery stores (excluding superstores like Walmart and Target)"},
			{Category: "streaming", Rate: 3.0, Description: "3% cash back on popular streaming services"},
			{Category: "other", Rate: 1.0, Description: "1% cash back on all other purchases"},
		},
		Perks: []domain.Perk{
			{Title: "No Annual Fee", Description: "Enjoy great rewards without paying an annual fee"},
			{Title: "No Foreign Transaction Fees", Description: "Use your card abroad with no foreign transaction fees"},
			{Title: "Extended Warranty", Description: "Extends manufacturer's warranty by one year on eligible purchases"},
		},
		Bonuses: []domain.Bonus{
			{Title: "Welcome Bonus", Description: "Earn $200 cash bonus after you spend $500 on purchases in the first 3 months", Value: "$200 cash back"},
		},
		PointValue: 1.0,
		PointsName: "Cash Back",
	},
	{
		ID:          "citi-custom-cash",
		Issuer:      "Citi",
		Name:        "Custom Cash",
		DisplayName: "Citi Custom Cash® Card",
		Network:     domain.NetworkMastercard,
		AnnualFee:   0,
		EarningRates: []domain.EarningRate{
			{Category: "dining", Rate: 5.0, Description: "5% cash back on purchases in your top eligible spend category each billing cycle (up to $500 spent)"},
			{Category: "grocery", Rate: 5.0, Description: "5% cash back in top category (grocery stores, gas stations, restaurants, select travel, select transit, select streaming, drugstores, home improvement, fitness clubs, live entertainment)"},
			{Category: "gas", Rate: 5.0, Description: "5% cash back in top category each billing cycle"},
			{Category: "other", Rate: 1.0, Description: "1% cash back on all other purchases"},
		},
		Perks: []domain.Perk{
			{Title: "No Annual Fee", Description: "Earn great rewards without paying an annual fee"},
			{Title: "Automatic 5% Category", Description: "Automatically earns 5% in your top spending category - no activation needed"},
			{Title: "0% Intro APR", Description: "0% intro APR on balance transfers for 15 months"},
		},
		Bonuses: []domain.Bonus{
			{Title: "Welcome Bonus", Description: "Earn $200 cash back after you spend $1,500 on purchases in the first 6 months", Value: "$200 cash back"},
		},
		PointValue: 1.0,
		PointsName: "Cash Back",
	},
	{
		ID:          "citi-double-cash",
		Issuer:      "Citi",
		Name:        "Double Cash",
		DisplayName: "Citi Double Cash® Card",
		Network:     domain.NetworkMastercard,
		AnnualFee:   0,
		EarningRates: []domain.EarningRate{
			{Category: "other", Rate: 2.0, Description: "2% cash back on all purchases: 1% when you buy plus 1% as you pay"},
		},
		Perks: []domain.Perk{
			{Title: "No Annual Fee", Description: "Earn 2% cash back on everything with no annual fee"},
			{Title: "0% Intro APR", Description: "0% intro APR on balance transfers for 18 months"},
			{Title: "Simple Rewards", Description: "No categories to track - earn 2% on every purchase"},
		},
		PointValue: 1.0,
		PointsName: "Cash Back",
	},
	{
		ID:          "discover-it-cash-back",
		Issuer:      "Discover",
		Name:        "It Cash Back",
		DisplayName: "Discover it® Cash Back",
		Network:     domain.NetworkDiscover,
		AnnualFee:   0,
		EarningRates: []domain.EarningRate{
			{Category: "rotating", Rate: 5.0, Description: "5% cash back on everyday purchases at different places each quarter like Amazon, grocery stores, restaurants, gas stations, and more (up to $1,500 in combined purchases per quarter, then 1%)"},
			{Category: "other", Rate: 1.0, Description: "1% unlimited cash back on all other purchases"},
		},
		Perks: []domain.Perk{
			{Title: "No Annual Fee", Description: "Earn great rewards without paying an annual fee"},
			{Title: "Cashback Match™", Description: "Discover will automatically match all the cash back you've earned at the end of your first year"},
			{Title: "0% Intro APR", Description: "0% intro APR on purchases and balance transfers for 15 months"},
			{Title: "No Foreign Transaction Fees", Description: "Use your card abroad with no foreign transaction fees"},
			{Title: "Free FICO® Score", Description: "Track your FICO® Credit Score for free"},
		},
		Bonuses: []domain.Bonus{
			{Title: "Cashback Match", Description: "Discover automatically matches all cash back earned in your first year", Value: "Doubles all rewards in year 1"},
		},
		PointValue: 1.0,
		PointsName: "Cash Back",
	},
	{
		ID:          "bofa-premium-rewards",
		Issuer:      "Bank of America",
		Name:        "Premium Rewards",
		DisplayName: "Bank of America® Premium Rewards®",
		Network:     domain.NetworkVisa,
		AnnualFee:   95,
		EarningRates: []domain.EarningRate{
			{Category: "flights", Rate: 2.0, Description: "2 points per $1 spent on travel purchases"},
			{Category: "dining", Rate: 2.0, Description: "2 points per $1 spent on dining"},
			{Category: "other", Rate: 1.5, Description: "1.5 points per $1 spent on all other purchases"},
		},
		Perks: []domain.Perk{
			{Title: "$100 Annual Airline Incidental Credit", Description: "Receive up to $100 annually in statement credits for airline incidental fees"},
			{Title: "Preferred Rewards Boost", Description: "Earn 25%-75% more points as a Preferred Rewards member"},
			{Title: "No Foreign Transaction Fees", Description: "Use your card abroad with no foreign transaction fees"},
			{Title: "TSA PreCheck or Global Entry Credit", Description: "Receive up to $100 statement credit every 4 years"},
		},
		Bonuses: []domain.Bonus{
			{Title: "Welcome Bonus", Description: "Earn 50,000 online bonus points after you make at least $3,000 in purchases in the first 90 days", Value: "$500 value"},
		},
		PointValue: 1.0,
		PointsName: "Points",
	},
	{
		ID:          "bofa-unlimited-cash",
		Issuer:      "Bank of America",
		Name:        "Unlimited Cash Rewards",
		DisplayName: "Bank of America® Unlimited Cash Rewards",
		Network:     domain.NetworkVisa,
		AnnualFee:   0,
		EarningRates: []domain.EarningRate{
			{Category: "other", Rate: 1.5, Description: "1.5% cash back on all purchases with no category restrictions"},
		},
		Perks: []domain.Perk{
			{Title: "No Annual Fee", Description: "Earn unlimited 1.5% cash back with no annual fee"},
			{Title: "Preferred Rewards Boost", Description: "Earn 25%-75% more cash back as a Preferred Rewards member"},
			{Title: "0% Intro APR", Description: "0% intro APR on purchases and balance transfers for 18 billing cycles"},
			{Title: "Simple Rewards", Description: "No categories to track - earn 1.5% on everything"},
		},
		Bonuses: []domain.Bonus{
			{Title: "Welcome Bonus", Description: "Earn $200 online cash rewards bonus after you make at least $1,000 in purchases in the first 90 days", Value: "$200 cash back"},
		},
		PointValue: 1.0,
		PointsName: "Cash Back",
	},
	{
		ID:          "citi-costco-anywhere-visa",
		Issuer:      "Citi",
		Name:        "Costco Anywhere Visa® Card by Citi",
		DisplayName: "Costco Anywhere Visa® Card by Citi",
		Network:     domain.NetworkVisa,
		AnnualFee:   0,
		EarningRates: []domain.EarningRate{
			{Category: "gas", Rate: 4.0, Description: "4% cash back on eligible gas and EV charging for the first $7,000 per year, then 1%"},
			{Category: "travel", Rate: 3.0, Description: "3% cash back on restaurant and eligible travel purchases"},
			{Category: "dining", Rate: 3.0, Description: "3% cash back on restaurant and eligible travel purchases"},
			{Category: "costco", Rate: 2.0, Description: "2% cash back on all purchases at Costco and Costco.com"},
			{Category: "other", Rate: 1.0, Description: "1% cash back on all other purchases"},
		},
		Perks: []domain.Perk{
			{Title: "No Annual Fee", Description: "No card annual fee (Costco membership required)"},
			{Title: "4% Back on Gas", Description: "Industry-leading 4% cash back on gas for first $7,000/year"},
			{Title: "Extended Warranty", Description: "Extends manufacturer's warranty by 2 years on eligible purchases"},
		},
		PointValue: 1.0,
		PointsName: "Cash Back",
	},
	{
		ID:          "wells-fargo-active-cash",
		Issuer:      "Wells Fargo",
		Name:        "Wells Fargo Active Cash℠ Card",
		DisplayName: "Wells Fargo Active Cash℠ Card",
		Network:     domain.NetworkVisa,
		AnnualFee:   0,
		EarningRates: []domain.EarningRate{
			{Category: "other", Rate: 2.0, Description: "Unlimited 2% cash back on purchases"},
		},
		Perks: []domain.Perk{
			{Title: "No Annual Fee", Description: "Earn unlimited 2% with no annual fee"},
			{Title: "0% Intro APR", Description: "0% intro APR for 15 months on purchases and qualifying balance transfers"},
			{Title: "Cell Phone Protection", Description: "Up to $600 protection against damage or theft"},
		},
		Bonuses: []domain.Bonus{
			{Title: "Welcome Bonus", Description: "Earn $200 cash rewards bonus after spending $500 in first 3 months", Value: "$200 cash back"},
		},
		PointValue: 1.0,
		PointsName: "Cash Rewards",
	},
	{
		ID:          "amazon-prime-rewards-visa",
		Issuer:      "Chase",
		Name:        "Amazon Prime Rewards Visa Signature Card",
		DisplayName: "Amazon Prime Rewards Visa Signature Card",
		Network:     domain.NetworkVisa,
		AnnualFee:   0,
		EarningRates: []domain.EarningRate{
			{Category: "amazon", Rate: 5.0, Description: "5% back on Amazon.com and Whole Foods (Prime members)"},
			{Category: "gas", Rate: 2.0, Description: "2% back at gas stations, restaurants, and drugstores"},
			{Category: "other", Rate: 1.0, Description: "1% back on all other purchases"},
		},
		Perks: []domain.Perk{
			{Title: "No Annual Fee", Description: "No card fee (Prime membership required: $139/year)"},
			{Title: "5% Back at Amazon", Description: "Industry-leading Amazon cash back for Prime members"},
			{Title: "Travel Protection", Description: "No foreign transaction fees and travel accident insurance"},
		},
		Bonuses: []domain.Bonus{
			{Title: "Welcome Bonus", Description: "Earn a $150 Amazon.com gift card instantly upon approval", Value: "$150 gift card"},
		},
		PointValue: 1.0,
		PointsName: "Cash Back",
	},
	{
		ID:          "us-bank-altitude-go",
		Issuer:      "US Bank",
		Name:        "U.S. Bank Altitude® Go Visa Signature® Card",
		DisplayName: "U.S. Bank Altitude® Go Visa Signature® Card",
		Network:     domain.NetworkVisa,
		AnnualFee:   0,
		EarningRates: []domain.EarningRate{
			{Category: "dining", Rate: 4.0, Description: "4X points on dining including takeout and delivery services"},
			{Category: "streaming", Rate: 2.0, Description: "2X points on streaming services, gas, and EV charging"},
			{Category: "grocery", Rate: 2.0, Description: "2X points at grocery stores, delivery, and gas"},
			{Category: "other", Rate: 1.0, Description: "1X point on all other purchases"},
		},
		Perks: []domain.Perk{
			{Title: "No Annual Fee", Description: "Premium rewards with no annual fee"},
			{Title: "Real-Time Rewards", Description: "Redeem for cash back, travel, gift cards with no minimums"},
			{Title: "Cell Phone Protection", Description: "Up to $600 coverage per claim"},
		},
		Bonuses: []domain.Bonus{
			{Title: "Welcome Bonus", Description: "Earn 20,000 bonus points after $1,000 in purchases within 90 days", Value: "20,000 points ($200)"},
		},
		PointValue: 1.0,
		PointsName: "Points",
	},
	{
		ID:          "hilton-honors-amex",
		Issuer:      "American Express",
		Name:        "Hilton Honors American Express Card",
		DisplayName: "Hilton Honors American Express Card",
		Network:     domain.NetworkAmex,
		AnnualFee:   0,
		EarningRates: []domain.EarningRate{
			{Category: "hilton", Rate: 7.0, Description: "7X points for each dollar spent at hotels and resorts in Hilton portfolio"},
			{Category: "dining", Rate: 5.0, Description: "5X points at U.S. restaurants, supermarkets, and gas stations"},
			{Category: "other", Rate: 3.0, Description: "3X points on all other purchases"},
		},
		Perks: []domain.Perk{
			{Title: "No Annual Fee", Description: "Earn Hilton points with no annual card fee"},
			{Title: "Hilton Silver Status", Description: "Complimentary Hilton Honors Silver status"},
			{Title: "No Foreign Transaction Fees", Description: "Use worldwide with no foreign transaction fees"},
		},
		Bonuses: []domain.Bonus{
			{Title: "Welcome Bonus", Description: "Earn 100,000 Hilton Honors bonus points after $2,000 in purchases in first 6 months", Value: "100,000 points"},
		},
		PointValue: 0.5,
		PointsName: "Hilton Honors Points",
	},
	{
		ID:          "chase-freedom-flex",
		Issuer:      "Chase",
		Name:        "Freedom Flex",
		DisplayName: "Chase Freedom Flex®",
		Network:     domain.NetworkMastercard,
		AnnualFee:   0,
		EarningRates: []domain.EarningRate{
			{Category: "rotating", Rate: 5.0, Description: "5% cash back on up to $1,500 in combined purchases in bonus categories each quarter you activate"},
			{Category: "flights", Rate: 5.0, Description: "5% cash back on travel purchased through Chase Travel℠"},
			{Category: "dining", Rate: 3.0, Description: "3% cash back on dining including takeout and eligible delivery services"},
			{Category: "drugstores", Rate: 3.0, Description: "3% cash back on drugstore purchases"},
			{Category: "other", Rate: 1.0, Description: "1% cash back on all other purchases"},
		},
		Perks: []domain.Perk{
			{Title: "No Annual Fee", Description: "Earn quarterly bonus rewards without paying an annual fee"},
			{Title: "Cell Phone Protection", Description: "Up to $800 per claim against covered theft or damage when you pay your bill with the card"},
		},
		Bonuses: []domain.Bonus{
			{Title: "Welcome Bonus", Description: "Earn $200 bonus cash back after you spend $500 on purchases in the first 3 months"},
		},
		PointValue: 1.0,
		PointsName: "Cash Back",
	},
}

// DefaultWalletIDs is the wallet used for first-time and anonymous sessions.
var DefaultWalletIDs = []string{"amex-gold", "amex-platinum", "amex-delta-reserve"}
