package seeddata

import "github.com/medora/tenant-seeder/internal/domain/entities"

var patients = []entities.Patient{
	{FullName: "Aarav Malhotra", Email: "aarav.malhotra@patienttest.com", Phone: "+91 97000 54321", Age: 34, Gender: "Male", State: "Maharashtra", Address: "12 Linking Road, Bandra West, Mumbai", Notes: "Recurring migraine headaches"},
	{FullName: "Ananya Iyer", Email: "ananya.iyer@patienttest.com", Phone: "+91 97000 60472", Age: 28, Gender: "Female", State: "Tamil Nadu", Address: "45 Besant Nagar 2nd Avenue, Chennai", Notes: "Irregular menstrual cycles"},
	{FullName: "Vivaan Sharma", Email: "vivaan.sharma@patienttest.com", Phone: "+91 97000 66623", Age: 52, Gender: "Male", State: "Delhi", Address: "B-14 Lajpat Nagar II, New Delhi", Notes: "High blood pressure follow-up"},
	{FullName: "Diya Reddy", Email: "diya.reddy@patienttest.com", Phone: "+91 97000 72774", Age: 19, Gender: "Female", State: "Telangana", Address: "8-2-293 Road No. 14, Banjara Hills, Hyderabad", Notes: "Acne and skin pigmentation"},
	{FullName: "Aditya Kulkarni", Email: "aditya.kulkarni@patienttest.com", Phone: "+91 97000 78925", Age: 45, Gender: "Male", State: "Maharashtra", Address: "21 FC Road, Shivajinagar, Pune", Notes: "Lower back pain after lifting"},
	{FullName: "Ishita Banerjee", Email: "ishita.banerjee@patienttest.com", Phone: "+91 97000 85076", Age: 31, Gender: "Female", State: "West Bengal", Address: "17 Gariahat Road, Ballygunge, Kolkata", Notes: "Thyroid medication review"},
	{FullName: "Reyansh Gupta", Email: "reyansh.gupta@patienttest.com", Phone: "+91 97000 91227", Age: 8, Gender: "Male", State: "Uttar Pradesh", Address: "56 Hazratganj, Lucknow", Notes: "Persistent cough and mild fever"},
	{FullName: "Saanvi Nair", Email: "saanvi.nair@patienttest.com", Phone: "+91 97000 97378", Age: 26, Gender: "Female", State: "Kerala", Address: "TC 24/1120 Vazhuthacaud, Thiruvananthapuram", Notes: "Routine antenatal check-up"},
	{FullName: "Arjun Mehta", Email: "arjun.mehta@patienttest.com", Phone: "+91 97001 03529", Age: 60, Gender: "Male", State: "Gujarat", Address: "9 CG Road, Navrangpura, Ahmedabad", Notes: "Type 2 diabetes management"},
	{FullName: "Kiara Desai", Email: "kiara.desai@patienttest.com", Phone: "+91 97001 09680", Age: 37, Gender: "Female", State: "Gujarat", Address: "33 Athwa Lines, Surat", Notes: "Anxiety and poor sleep"},
	{FullName: "Vihaan Singh", Email: "vihaan.singh@patienttest.com", Phone: "+91 97001 15831", Age: 41, Gender: "Male", State: "Punjab", Address: "House 221, Sector 17, Chandigarh", Notes: "Chest discomfort on exertion"},
	{FullName: "Myra Kapoor", Email: "myra.kapoor@patienttest.com", Phone: "+91 97001 21982", Age: 23, Gender: "Female", State: "Delhi", Address: "C-5 Vasant Vihar, New Delhi", Notes: "Seasonal allergic rhinitis"},
	{FullName: "Krishna Pillai", Email: "krishna.pillai@patienttest.com", Phone: "+91 97001 28133", Age: 67, Gender: "Male", State: "Kerala", Address: "Door 4/55 MG Road, Ernakulam, Kochi", Notes: "Cataract evaluation"},
	{FullName: "Aadhya Joshi", Email: "aadhya.joshi@patienttest.com", Phone: "+91 97001 34284", Age: 15, Gender: "Female", State: "Rajasthan", Address: "72 C-Scheme, Jaipur", Notes: "Dental pain in lower molar"},
	{FullName: "Sai Venkatesh", Email: "sai.venkatesh@patienttest.com", Phone: "+91 97001 40435", Age: 49, Gender: "Male", State: "Karnataka", Address: "88 Indiranagar 100 Feet Road, Bengaluru", Notes: "Acid reflux and heartburn"},
	{FullName: "Pari Chatterjee", Email: "pari.chatterjee@patienttest.com", Phone: "+91 97001 46586", Age: 30, Gender: "Female", State: "West Bengal", Address: "5 Salt Lake Sector V, Kolkata", Notes: "Vitamin D deficiency"},
	{FullName: "Ayaan Qureshi", Email: "ayaan.qureshi@patienttest.com", Phone: "+91 97001 52737", Age: 27, Gender: "Male", State: "Uttar Pradesh", Address: "14 Civil Lines, Prayagraj", Notes: "Sports injury to right knee"},
	{FullName: "Anika Rao", Email: "anika.rao@patienttest.com", Phone: "+91 97001 58888", Age: 44, Gender: "Female", State: "Karnataka", Address: "23 Jayanagar 4th Block, Bengaluru", Notes: "Joint stiffness in the morning"},
	{FullName: "Rohan Das", Email: "rohan.das@patienttest.com", Phone: "+91 97001 65039", Age: 38, Gender: "Male", State: "Odisha", Address: "Plot 112 Saheed Nagar, Bhubaneswar", Notes: "Kidney stone follow-up"},
	{FullName: "Navya Menon", Email: "navya.menon@patienttest.com", Phone: "+91 97001 71190", Age: 33, Gender: "Female", State: "Kerala", Address: "12 Kowdiar Road, Thiruvananthapuram", Notes: "Hair loss and fatigue"},
	{FullName: "Dhruv Agarwal", Email: "dhruv.agarwal@patienttest.com", Phone: "+91 97001 77341", Age: 55, Gender: "Male", State: "Madhya Pradesh", Address: "61 MP Nagar Zone 1, Bhopal", Notes: "Breathlessness while climbing stairs"},
	{FullName: "Avni Saxena", Email: "avni.saxena@patienttest.com", Phone: "+91 97001 83492", Age: 29, Gender: "Female", State: "Uttar Pradesh", Address: "7 Gomti Nagar, Lucknow", Notes: "Recurrent urinary tract infection"},
	{FullName: "Kabir Khan", Email: "kabir.khan@patienttest.com", Phone: "+91 97001 89643", Age: 46, Gender: "Male", State: "Jammu and Kashmir", Address: "Lal Chowk, Srinagar", Notes: "Ear pain and reduced hearing"},
	{FullName: "Riya Bhatt", Email: "riya.bhatt@patienttest.com", Phone: "+91 97001 95794", Age: 22, Gender: "Female", State: "Gujarat", Address: "18 Alkapuri, Vadodara", Notes: "Iron deficiency anaemia"},
	{FullName: "Atharv Yadav", Email: "atharv.yadav@patienttest.com", Phone: "+91 97002 01945", Age: 12, Gender: "Male", State: "Bihar", Address: "Boring Road, Patna", Notes: "Vaccination due"},
	{FullName: "Sara Fernandes", Email: "sara.fernandes@patienttest.com", Phone: "+91 97002 08096", Age: 36, Gender: "Female", State: "Goa", Address: "House 9, Campal, Panaji", Notes: "Post-natal follow-up"},
	{FullName: "Shaurya Chauhan", Email: "shaurya.chauhan@patienttest.com", Phone: "+91 97002 14247", Age: 58, Gender: "Male", State: "Haryana", Address: "House 402, Sector 14, Gurugram", Notes: "Prostate enlargement symptoms"},
	{FullName: "Meher Sethi", Email: "meher.sethi@patienttest.com", Phone: "+91 97002 20398", Age: 40, Gender: "Female", State: "Punjab", Address: "22 Model Town, Ludhiana", Notes: "Varicose veins in legs"},
	{FullName: "Ishaan Mishra", Email: "ishaan.mishra@patienttest.com", Phone: "+91 97002 26549", Age: 24, Gender: "Male", State: "Madhya Pradesh", Address: "15 Vijay Nagar, Indore", Notes: "Fever with body ache"},
	{FullName: "Tara Shetty", Email: "tara.shetty@patienttest.com", Phone: "+91 97002 32700", Age: 50, Gender: "Female", State: "Karnataka", Address: "3 Kadri Hills, Mangaluru", Notes: "Menopause symptoms"},
	{FullName: "Yash Thakur", Email: "yash.thakur@patienttest.com", Phone: "+91 97002 38851", Age: 33, Gender: "Male", State: "Himachal Pradesh", Address: "The Mall, Shimla", Notes: "Gastritis after meals"},
	{FullName: "Zoya Siddiqui", Email: "zoya.siddiqui@patienttest.com", Phone: "+91 97002 45002", Age: 27, Gender: "Female", State: "Telangana", Address: "Tolichowki, Hyderabad", Notes: "Migraine with aura"},
	{FullName: "Parth Jain", Email: "parth.jain@patienttest.com", Phone: "+91 97002 51153", Age: 62, Gender: "Male", State: "Rajasthan", Address: "45 Sardarpura, Jodhpur", Notes: "Knee osteoarthritis"},
	{FullName: "Aarohi Kulkarni", Email: "aarohi.kulkarni@patienttest.com", Phone: "+91 97002 57304", Age: 5, Gender: "Female", State: "Maharashtra", Address: "7 Dharampeth, Nagpur", Notes: "Recurrent tonsillitis"},
	{FullName: "Rudra Pandey", Email: "rudra.pandey@patienttest.com", Phone: "+91 97002 63455", Age: 71, Gender: "Male", State: "Uttar Pradesh", Address: "Assi Ghat Road, Varanasi", Notes: "Memory lapses reported by family"},
	{FullName: "Nisha Thomas", Email: "nisha.thomas@patienttest.com", Phone: "+91 97002 69606", Age: 35, Gender: "Female", State: "Kerala", Address: "Kottayam Road, Changanassery", Notes: "Skin rash on forearms"},
	{FullName: "Karan Malhotra", Email: "karan.malhotra@patienttest.com", Phone: "+91 97002 75757", Age: 30, Gender: "Male", State: "Delhi", Address: "E-22 Rajouri Garden, New Delhi", Notes: "Annual health check-up"},
	{FullName: "Sneha Patil", Email: "sneha.patil@patienttest.com", Phone: "+91 97002 81908", Age: 42, Gender: "Female", State: "Maharashtra", Address: "Kolhapur Road, Sangli", Notes: "Blurred vision while reading"},
	{FullName: "Harsh Vardhan", Email: "harsh.vardhan@patienttest.com", Phone: "+91 97002 88059", Age: 48, Gender: "Male", State: "Uttarakhand", Address: "Rajpur Road, Dehradun", Notes: "Snoring and daytime sleepiness"},
	{FullName: "Lavanya Subramaniam", Email: "lavanya.subramaniam@patienttest.com", Phone: "+91 97002 94210", Age: 39, Gender: "Female", State: "Tamil Nadu", Address: "RS Puram, Coimbatore", Notes: "Diet consultation for weight loss"},
}
