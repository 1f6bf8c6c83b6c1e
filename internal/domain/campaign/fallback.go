package campaign

import "fmt"

// DefaultPersonas 는 모델 호출 없이 스키마를 만족하는 5개 페르소나를 만든다.
// 같은 캠페인 입력에 대해 항상 같은 결과를 내는 순수 함수이며,
// 시즌 문구만 이름/설명에 끼워 넣는다. 정규화 단계의 패치 소스이자
// 완전 실패 시의 대체 출력으로 쓰인다.
func DefaultPersonas(c Campaign) []Persona {
	season := c.SeasonLabel()

	return []Persona{
		{
			ID:          "persona_1",
			Name:        fmt.Sprintf("The %s Enthusiast", season),
			Description: fmt.Sprintf("Tech-savvy %s enthusiast who values experiences and seasonal celebrations", season),
			Demographics: Demographics{
				Age:       "25-35",
				Income:    "$50K-$80K",
				Location:  "Urban",
				Interests: []string{"Technology", "Sustainability", "Social Media", "Travel"},
			},
			PainPoints:  []string{"FOMO", "Budget constraints", "Time management"},
			Motivations: []string{"Social status", "Personal growth", "Environmental impact"},
			Offers: []Offer{
				{
					ID:           "offer_1",
					Title:        "Early Bird Special",
					Description:  "Get 20% off when you book early",
					Discount:     20,
					DiscountType: "percentage",
					Value:        "Save up to $100",
					Terms:        []string{"Valid for 48 hours", "New customers only"},
					Urgency:      "Limited time offer",
					CallToAction: "Book Now & Save",
				},
				{
					ID:           "offer_2",
					Title:        "Social Media Exclusive",
					Description:  "Follow us for special discounts",
					Discount:     15,
					DiscountType: "percentage",
					Value:        "Exclusive social offers",
					Terms:        []string{"Must follow on Instagram", "Valid for 7 days"},
					CallToAction: "Follow & Save",
				},
				{
					ID:           "offer_3",
					Title:        "Referral Bonus",
					Description:  "Refer friends and earn rewards",
					DiscountType: "bogo",
					Value:        "Get 1 free for every 2 referrals",
					Terms:        []string{"Valid referrals only", "Maximum 5 per month"},
					CallToAction: "Refer & Earn",
				},
				{
					ID:           "offer_4",
					Title:        "Student Discount",
					Description:  "Special rates for students",
					Discount:     25,
					DiscountType: "percentage",
					Value:        "Student exclusive pricing",
					Terms:        []string{"Valid student ID required", "First-time students only"},
					CallToAction: "Verify & Save",
				},
				{
					ID:           "offer_5",
					Title:        "Bundle Deal",
					Description:  "Buy more, save more",
					Discount:     30,
					DiscountType: "percentage",
					Value:        "Up to 30% off bundles",
					Terms:        []string{"Minimum 3 items", "Valid for 30 days"},
					CallToAction: "Bundle & Save",
				},
				{
					ID:           "offer_6",
					Title:        "Flash Sale",
					Description:  "Limited time flash sale",
					Discount:     40,
					DiscountType: "percentage",
					Value:        "Flash sale pricing",
					Terms:        []string{"Limited quantities", "Valid for 2 hours only"},
					Urgency:      "Flash sale ends soon",
					CallToAction: "Shop Now",
				},
				{
					ID:           "offer_7",
					Title:        "Loyalty Rewards",
					Description:  "Earn points with every purchase",
					DiscountType: "points",
					Value:        "1000 points = $10 off",
					Terms:        []string{"Points expire in 1 year", "Minimum 500 points to redeem"},
					CallToAction: "Join Loyalty Program",
				},
				{
					ID:           "offer_8",
					Title:        "Free Shipping",
					Description:  "Free delivery on all orders",
					DiscountType: "free_shipping",
					Value:        "Free shipping nationwide",
					Terms:        []string{"No minimum order", "Valid for 7 days"},
					CallToAction: "Shop with Free Shipping",
				},
				{
					ID:           "offer_9",
					Title:        "Seasonal Special",
					Description:  "Special seasonal pricing",
					Discount:     20,
					DiscountType: "percentage",
					Value:        "Seasonal discount",
					Terms:        []string{"Limited time only", "While supplies last"},
					CallToAction: "Get Seasonal Deal",
				},
				{
					ID:           "offer_10",
					Title:        "New Customer Welcome",
					Description:  "Welcome bonus for new customers",
					Discount:     50,
					DiscountType: "percentage",
					Value:        "50% off first order",
					Terms:        []string{"New customers only", "Maximum $50 discount"},
					CallToAction: "Welcome Offer",
				},
				{
					ID:           "offer_11",
					Title:        "VIP Access",
					Description:  "Exclusive VIP member benefits",
					Discount:     35,
					DiscountType: "percentage",
					Value:        "VIP member pricing",
					Terms:        []string{"VIP membership required", "Valid for 1 year"},
					CallToAction: "Join VIP",
				},
				{
					ID:           "offer_12",
					Title:        "Cashback Rewards",
					Description:  "Earn cashback on purchases",
					Discount:     10,
					DiscountType: "cashback",
					Value:        "10% cashback",
					Terms:        []string{"Cashback credited in 30 days", "Minimum $25 purchase"},
					CallToAction: "Earn Cashback",
				},
			},
			PreferredChannels: []string{"Instagram", "TikTok", "Email"},
			MessagingTone:     "Casual, trendy, authentic",
		},
		{
			ID:          "persona_2",
			Name:        fmt.Sprintf("The %s Luxury Shopper", season),
			Description: fmt.Sprintf("High-income professional who values quality and exclusive %s experiences", season),
			Demographics: Demographics{
				Age:       "35-50",
				Income:    "$100K+",
				Location:  "Suburban/Urban",
				Interests: []string{"Luxury goods", "Fine dining", "Travel", "Art"},
			},
			PainPoints:  []string{"Time scarcity", "Quality assurance", "Exclusivity"},
			Motivations: []string{"Status", "Quality", "Exclusivity", "Convenience"},
			Offers: []Offer{
				{
					ID:           "offer_1",
					Title:        "VIP Exclusive Access",
					Description:  "Priority access to limited edition items",
					DiscountType: "bogo",
					Value:        "Buy one, get one free",
					Terms:        []string{"VIP members only", "While supplies last"},
					Exclusivity:  "VIP exclusive",
					CallToAction: "Claim VIP Access",
				},
				{
					ID:           "offer_2",
					Title:        "Premium Collection",
					Description:  "Access to premium product line",
					Discount:     25,
					DiscountType: "percentage",
					Value:        "Premium member pricing",
					Terms:        []string{"VIP membership required", "Limited quantities"},
					CallToAction: "Shop Premium",
				},
				{
					ID:           "offer_3",
					Title:        "Concierge Service",
					Description:  "Personal shopping assistance",
					DiscountType: "service",
					Value:        "Free personal consultation",
					Terms:        []string{"VIP members only", "By appointment only"},
					CallToAction: "Book Consultation",
				},
				{
					ID:           "offer_4",
					Title:        "Exclusive Events",
					Description:  "Invitation to exclusive events",
					DiscountType: "event",
					Value:        "VIP event access",
					Terms:        []string{"Members only", "Limited seating"},
					CallToAction: "RSVP Now",
				},
				{
					ID:           "offer_5",
					Title:        "Luxury Gift Wrapping",
					Description:  "Complimentary premium gift wrapping",
					DiscountType: "service",
					Value:        "Free luxury wrapping",
					Terms:        []string{"Minimum $200 purchase", "Valid for 30 days"},
					CallToAction: "Add Gift Wrapping",
				},
				{
					ID:           "offer_6",
					Title:        "Priority Shipping",
					Description:  "Expedited delivery service",
					DiscountType: "service",
					Value:        "Free express shipping",
					Terms:        []string{"VIP members only", "Within 24 hours"},
					CallToAction: "Express Delivery",
				},
				{
					ID:           "offer_7",
					Title:        "Exclusive Preview",
					Description:  "Early access to new collections",
					DiscountType: "access",
					Value:        "First to shop new arrivals",
					Terms:        []string{"VIP members only", "Limited time"},
					CallToAction: "Preview Collection",
				},
				{
					ID:           "offer_8",
					Title:        "Personal Stylist",
					Description:  "Free personal styling service",
					DiscountType: "service",
					Value:        "Complimentary styling",
					Terms:        []string{"VIP members only", "In-store only"},
					CallToAction: "Book Styling",
				},
				{
					ID:           "offer_9",
					Title:        "Luxury Rewards",
					Description:  "Enhanced loyalty program benefits",
					DiscountType: "points",
					Value:        "2x points on all purchases",
					Terms:        []string{"VIP members only", "Points never expire"},
					CallToAction: "Join VIP Rewards",
				},
				{
					ID:           "offer_10",
					Title:        "Exclusive Discounts",
					Description:  "Members-only pricing on select items",
					Discount:     30,
					DiscountType: "percentage",
					Value:        "VIP member pricing",
					Terms:        []string{"VIP members only", "Selected items"},
					CallToAction: "Shop VIP Prices",
				},
				{
					ID:           "offer_11",
					Title:        "Complimentary Alterations",
					Description:  "Free tailoring services",
					DiscountType: "service",
					Value:        "Free alterations",
					Terms:        []string{"VIP members only", "Valid for 60 days"},
					CallToAction: "Schedule Alterations",
				},
				{
					ID:           "offer_12",
					Title:        "Exclusive Accessories",
					Description:  "Access to limited edition accessories",
					DiscountType: "access",
					Value:        "Exclusive accessory collection",
					Terms:        []string{"VIP members only", "While supplies last"},
					CallToAction: "Shop Accessories",
				},
			},
			PreferredChannels: []string{"Email", "Direct mail", "Concierge"},
			MessagingTone:     "Sophisticated, exclusive, premium",
		},
		{
			ID:          "persona_3",
			Name:        fmt.Sprintf("The %s Family Planner", season),
			Description: fmt.Sprintf("Price-sensitive families looking for value and practical %s celebrations", season),
			Demographics: Demographics{
				Age:       "30-45",
				Income:    "$40K-$70K",
				Location:  "Suburban",
				Interests: []string{"Family activities", "Budgeting", "Home improvement", "Education"},
			},
			PainPoints:  []string{"Budget constraints", "Family needs", "Value for money"},
			Motivations: []string{"Family wellbeing", "Savings", "Practicality", "Reliability"},
			Offers: []Offer{
				{
					ID:           "offer_1",
					Title:        "Family Bundle Deal",
					Description:  "Special family package with maximum savings",
					Discount:     30,
					DiscountType: "percentage",
					Value:        "Save up to $200 for the whole family",
					Terms:        []string{"Family of 4+", "Valid for 30 days"},
					CallToAction: "Get Family Deal",
				},
				{
					ID:           "offer_2",
					Title:        "Kids Eat Free",
					Description:  "Free kids meals with adult purchase",
					DiscountType: "bogo",
					Value:        "Kids eat free",
					Terms:        []string{"One child per adult", "Valid for 7 days"},
					CallToAction: "Family Dining",
				},
				{
					ID:           "offer_3",
					Title:        "Bulk Purchase Discount",
					Description:  "Save more when you buy in bulk",
					Discount:     25,
					DiscountType: "percentage",
					Value:        "Up to 25% off bulk orders",
					Terms:        []string{"Minimum 5 items", "Valid for 60 days"},
					CallToAction: "Buy in Bulk",
				},
				{
					ID:           "offer_4",
					Title:        "Family Membership",
					Description:  "Annual family membership benefits",
					DiscountType: "membership",
					Value:        "Family membership perks",
					Terms:        []string{"Valid for 1 year", "Up to 6 family members"},
					CallToAction: "Join Family Plan",
				},
				{
					ID:           "offer_5",
					Title:        "Weekend Special",
					Description:  "Special weekend family pricing",
					Discount:     20,
					DiscountType: "percentage",
					Value:        "Weekend family discount",
					Terms:        []string{"Weekends only", "Family of 3+"},
					CallToAction: "Weekend Deal",
				},
				{
					ID:           "offer_6",
					Title:        "Educational Discount",
					Description:  "Special rates for educational purchases",
					Discount:     15,
					DiscountType: "percentage",
					Value:        "Educational pricing",
					Terms:        []string{"Valid school ID required", "Educational items only"},
					CallToAction: "Verify Education",
				},
				{
					ID:           "offer_7",
					Title:        "Family Rewards",
					Description:  "Earn points for family purchases",
					DiscountType: "points",
					Value:        "Family loyalty points",
					Terms:        []string{"Points shared across family", "Never expire"},
					CallToAction: "Join Family Rewards",
				},
				{
					ID:           "offer_8",
					Title:        "Free Home Delivery",
					Description:  "Complimentary home delivery",
					DiscountType: "free_shipping",
					Value:        "Free delivery to your door",
					Terms:        []string{"Minimum $50 order", "Within 10km radius"},
					CallToAction: "Home Delivery",
				},
				{
					ID:           "offer_9",
					Title:        "Family Size Upgrade",
					Description:  "Free size upgrade for family orders",
					DiscountType: "upgrade",
					Value:        "Free size upgrade",
					Terms:        []string{"Family orders only", "While supplies last"},
					CallToAction: "Upgrade Size",
				},
				{
					ID:           "offer_10",
					Title:        "Multi-Purchase Deal",
					Description:  "Buy multiple items and save",
					Discount:     35,
					DiscountType: "percentage",
					Value:        "Multi-purchase savings",
					Terms:        []string{"Minimum 3 different items", "Valid for 45 days"},
					CallToAction: "Multi-Buy Deal",
				},
				{
					ID:           "offer_11",
					Title:        "Family Event Package",
					Description:  "Special pricing for family events",
					DiscountType: "package",
					Value:        "Event package pricing",
					Terms:        []string{"Advance booking required", "Minimum 10 people"},
					CallToAction: "Book Event",
				},
				{
					ID:           "offer_12",
					Title:        "Seasonal Family Offer",
					Description:  "Special seasonal family pricing",
					Discount:     40,
					DiscountType: "percentage",
					Value:        "Seasonal family discount",
					Terms:        []string{"Limited time only", "Family of 4+"},
					CallToAction: "Seasonal Deal",
				},
			},
			PreferredChannels: []string{"Email", "Facebook", "Direct mail"},
			MessagingTone:     "Warm, trustworthy, value-focused",
		},
		{
			ID:          "persona_4",
			Name:        fmt.Sprintf("The %s Wellness Seeker", season),
			Description: fmt.Sprintf("Health and wellness focused individual prioritizing self-care during %s", season),
			Demographics: Demographics{
				Age:       "25-45",
				Income:    "$60K-$90K",
				Location:  "Urban/Suburban",
				Interests: []string{"Fitness", "Nutrition", "Mental health", "Sustainability"},
			},
			PainPoints:  []string{"Time for self-care", "Finding quality products", "Staying motivated"},
			Motivations: []string{"Health improvement", "Wellness", "Personal growth", "Sustainability"},
			Offers: []Offer{
				{
					ID:           "offer_1",
					Title:        "Wellness Starter Pack",
					Description:  "Complete wellness package to kickstart your journey",
					Discount:     25,
					DiscountType: "percentage",
					Value:        "Everything you need to start",
					Terms:        []string{"First-time wellness customers", "Includes free consultation"},
					CallToAction: "Start Your Wellness Journey",
				},
				{
					ID:           "offer_2",
					Title:        "Fitness Challenge",
					Description:  "Join our 30-day fitness challenge",
					DiscountType: "challenge",
					Value:        "Free fitness program",
					Terms:        []string{"30-day commitment", "Daily check-ins required"},
					CallToAction: "Join Challenge",
				},
				{
					ID:           "offer_3",
					Title:        "Nutrition Consultation",
					Description:  "Free personalized nutrition plan",
					DiscountType: "service",
					Value:        "Complimentary consultation",
					Terms:        []string{"First-time customers", "Valid for 30 days"},
					CallToAction: "Book Consultation",
				},
				{
					ID:           "offer_4",
					Title:        "Wellness Subscription",
					Description:  "Monthly wellness box delivery",
					Discount:     20,
					DiscountType: "percentage",
					Value:        "Monthly wellness products",
					Terms:        []string{"3-month minimum", "Cancel anytime"},
					CallToAction: "Subscribe Now",
				},
				{
					ID:           "offer_5",
					Title:        "Group Fitness Classes",
					Description:  "Access to all group fitness classes",
					Discount:     30,
					DiscountType: "percentage",
					Value:        "Unlimited group classes",
					Terms:        []string{"Monthly membership", "All locations"},
					CallToAction: "Join Classes",
				},
				{
					ID:           "offer_6",
					Title:        "Health Assessment",
					Description:  "Comprehensive health assessment",
					DiscountType: "service",
					Value:        "Free health evaluation",
					Terms:        []string{"New members only", "Valid for 60 days"},
					CallToAction: "Schedule Assessment",
				},
				{
					ID:           "offer_7",
					Title:        "Wellness Rewards",
					Description:  "Earn points for healthy activities",
					DiscountType: "points",
					Value:        "Wellness activity points",
					Terms:        []string{"Track daily activities", "Redeem for products"},
					CallToAction: "Start Earning",
				},
				{
					ID:           "offer_8",
					Title:        "Personal Training",
					Description:  "One-on-one personal training session",
					Discount:     50,
					DiscountType: "percentage",
					Value:        "50% off first session",
					Terms:        []string{"New clients only", "Valid for 14 days"},
					CallToAction: "Book Training",
				},
				{
					ID:           "offer_9",
					Title:        "Wellness App Access",
					Description:  "Premium wellness app features",
					DiscountType: "access",
					Value:        "Full app access",
					Terms:        []string{"6-month subscription", "All features included"},
					CallToAction: "Download App",
				},
				{
					ID:           "offer_10",
					Title:        "Healthy Meal Plans",
					Description:  "Customized meal planning service",
					Discount:     40,
					DiscountType: "percentage",
					Value:        "Personalized meal plans",
					Terms:        []string{"Weekly meal plans", "Dietary preferences considered"},
					CallToAction: "Get Meal Plans",
				},
				{
					ID:           "offer_11",
					Title:        "Wellness Retreat",
					Description:  "Weekend wellness retreat access",
					DiscountType: "event",
					Value:        "Retreat participation",
					Terms:        []string{"Advance booking required", "Limited spots"},
					CallToAction: "Reserve Spot",
				},
				{
					ID:           "offer_12",
					Title:        "Health Supplements",
					Description:  "Premium health supplements",
					Discount:     25,
					DiscountType: "percentage",
					Value:        "Quality supplements",
					Terms:        []string{"Monthly delivery", "Cancel anytime"},
					CallToAction: "Order Supplements",
				},
			},
			PreferredChannels: []string{"Instagram", "Email", "Health apps"},
			MessagingTone:     "Motivational, supportive, health-focused",
		},
		{
			ID:          "persona_5",
			Name:        fmt.Sprintf("The %s Traditionalist", season),
			Description: fmt.Sprintf("Experienced professional with established %s traditions and higher disposable income", season),
			Demographics: Demographics{
				Age:       "50-65",
				Income:    "$80K-$120K",
				Location:  "Suburban/Urban",
				Interests: []string{"Travel", "Hobbies", "Family", "Retirement planning"},
			},
			PainPoints:  []string{"Technology adoption", "Changing market", "Time management"},
			Motivations: []string{"Quality", "Reliability", "Value", "Legacy"},
			Offers: []Offer{
				{
					ID:           "offer_1",
					Title:        "Lifetime Value Package",
					Description:  "Comprehensive package with ongoing benefits",
					Discount:     15,
					DiscountType: "percentage",
					Value:        "Best value with lifetime support",
					Terms:        []string{"Lifetime warranty", "Priority support", "Annual reviews"},
					CallToAction: "Secure Your Future",
				},
				{
					ID:           "offer_2",
					Title:        "Senior Citizen Discount",
					Description:  "Special pricing for senior citizens",
					Discount:     20,
					DiscountType: "percentage",
					Value:        "Senior citizen pricing",
					Terms:        []string{"Valid ID required", "Age 60+"},
					CallToAction: "Verify Age",
				},
				{
					ID:           "offer_3",
					Title:        "Priority Customer Service",
					Description:  "Dedicated customer service line",
					DiscountType: "service",
					Value:        "Priority support access",
					Terms:        []string{"Dedicated phone line", "Faster response times"},
					CallToAction: "Call Priority Line",
				},
				{
					ID:           "offer_4",
					Title:        "Comprehensive Warranty",
					Description:  "Extended warranty coverage",
					DiscountType: "warranty",
					Value:        "Extended protection",
					Terms:        []string{"5-year warranty", "All repairs covered"},
					CallToAction: "Add Warranty",
				},
				{
					ID:           "offer_5",
					Title:        "Personal Consultation",
					Description:  "One-on-one consultation service",
					DiscountType: "service",
					Value:        "Personal advisor",
					Terms:        []string{"Free consultation", "Expert guidance"},
					CallToAction: "Book Consultation",
				},
				{
					ID:           "offer_6",
					Title:        "Legacy Planning",
					Description:  "Estate and legacy planning services",
					DiscountType: "service",
					Value:        "Legacy planning support",
					Terms:        []string{"Professional guidance", "Comprehensive planning"},
					CallToAction: "Plan Legacy",
				},
				{
					ID:           "offer_7",
					Title:        "Premium Support",
					Description:  "White-glove customer service",
					DiscountType: "service",
					Value:        "Premium support experience",
					Terms:        []string{"Dedicated account manager", "24/7 support"},
					CallToAction: "Get Premium Support",
				},
				{
					ID:           "offer_8",
					Title:        "Family Benefits",
					Description:  "Extended benefits for family members",
					DiscountType: "family",
					Value:        "Family coverage",
					Terms:        []string{"Spouse and children included", "Shared benefits"},
					CallToAction: "Add Family",
				},
				{
					ID:           "offer_9",
					Title:        "Annual Review",
					Description:  "Complimentary annual service review",
					DiscountType: "service",
					Value:        "Free annual review",
					Terms:        []string{"Yearly checkup", "Performance optimization"},
					CallToAction: "Schedule Review",
				},
				{
					ID:           "offer_10",
					Title:        "Exclusive Access",
					Description:  "Access to premium features",
					DiscountType: "access",
					Value:        "Premium features",
					Terms:        []string{"Advanced tools", "Exclusive content"},
					CallToAction: "Access Premium",
				},
				{
					ID:           "offer_11",
					Title:        "Retirement Planning",
					Description:  "Comprehensive retirement planning",
					DiscountType: "service",
					Value:        "Retirement guidance",
					Terms:        []string{"Financial planning", "Investment advice"},
					CallToAction: "Plan Retirement",
				},
				{
					ID:           "offer_12",
					Title:        "Lifetime Learning",
					Description:  "Continuous education and training",
					DiscountType: "education",
					Value:        "Lifetime learning access",
					Terms:        []string{"Ongoing education", "Skill development"},
					CallToAction: "Start Learning",
				},
			},
			PreferredChannels: []string{"Email", "Phone", "Direct mail"},
			MessagingTone:     "Professional, trustworthy, respectful",
		},
	}
}
