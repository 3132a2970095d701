// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

// The builtin names below are the vocabulary the pattern catalog's
// `verification:` field speaks. They are registered once at package init and
// the registry is read-only from then on.
func init() {
	builtins := map[string]Func{
		// Checksums
		"luhn":                  Luhn,
		"iban_mod97":            IBANMod97,
		"credit_card_bin_valid": CreditCardBIN,

		// National identifiers
		"us_ssn_valid":                    USSocialSecurity,
		"kr_rrn_valid":                    KoreanRRN,
		"kr_alien_registration_valid":     KoreanAlienRegistration,
		"kr_corporate_registration_valid": KoreanCorporateRegistration,
		"kr_business_registration_valid":  KoreanBusinessRegistration,
		"jp_my_number_valid":              JapaneseMyNumber,
		"cn_national_id_valid":            ChineseNationalID,
		"tw_national_id_valid":            TaiwanNationalID,
		"india_aadhaar_valid":             IndiaAadhaar,
		"india_pan_valid":                 IndiaPAN,
		"spain_dni_valid":                 SpainDNI,
		"spain_nie_valid":                 SpainNIE,
		"netherlands_bsn_valid":           NetherlandsBSN,
		"poland_pesel_valid":              PolandPESEL,
		"sweden_personnummer_valid":       SwedenPersonnummer,
		"france_insee_valid":              FranceINSEE,
		"belgium_rrn_valid":               BelgiumRRN,
		"finland_hetu_valid":              FinlandHETU,

		// Secrets / entropy
		"high_entropy_token": HighEntropyToken,

		// Heuristic filters
		"not_timestamp":                NotTimestamp,
		"generic_number_not_timestamp": GenericNumberNotTimestamp,
		"not_repeating_pattern":        NotRepeatingPattern,
		"contains_letter":              ContainsLetter,
		"korean_bank_account_valid":    KoreanBankAccount,
		"korean_zipcode_valid":         KoreanZipcode,
		"us_zipcode_valid":             USZipcode,

		// Geographic / structured formats
		"dms_coordinate": DMSCoordinate,
		"ipv4_public":    IPv4Public,
	}

	for name, fn := range builtins {
		DefaultRegistry.MustRegister(name, fn)
	}
}
